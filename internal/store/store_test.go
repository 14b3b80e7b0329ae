package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)

	value, ok, err := s.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("greeting", `"hello"`))
	value, ok, err := s.Get("greeting")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"hello"`, value)
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("k", "old"))
	require.NoError(t, s.Put("k", "new"))

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("k", "v"))
	require.NoError(t, s.Delete("k"))

	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine
	require.NoError(t, s.Delete("k"))
}

func TestJSONRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.PutJSON("rec", record{Name: "alice", Count: 3}))

	var got record
	ok, err := s.GetJSON("rec", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, record{Name: "alice", Count: 3}, got)
}

func TestGetJSONMissing(t *testing.T) {
	s := newTestStore(t)

	var got map[string]string
	ok, err := s.GetJSON("absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetJSONCorrupt(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("bad", "{not json"))

	var got map[string]string
	_, err := s.GetJSON("bad", &got)
	assert.Error(t, err)
}

func TestReopenFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "taskflow.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", "v"))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	value, ok, err := s2.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestTasksKey(t *testing.T) {
	assert.Equal(t, "tasks_abc", TasksKey("abc"))
	assert.NotEqual(t, TasksKey("a"), TasksKey("b"))
}

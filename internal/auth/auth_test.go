package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/taskflow/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewManager(s), s
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    [4]string // name, email, password, confirm
		wantMsg string
	}{
		{"empty name", [4]string{"", "a@x.com", "secret1", "secret1"}, "Please fill in all fields"},
		{"blank name", [4]string{"   ", "a@x.com", "secret1", "secret1"}, "Please fill in all fields"},
		{"empty email", [4]string{"Alice", "", "secret1", "secret1"}, "Please fill in all fields"},
		{"mismatch", [4]string{"Alice", "a@x.com", "secret1", "secret2"}, "Passwords do not match"},
		{"short password", [4]string{"Alice", "a@x.com", "abc", "abc"}, "Password must be at least 6 characters long"},
		{"no at sign", [4]string{"Alice", "ax.com", "secret1", "secret1"}, "Please enter a valid email address"},
		{"no tld", [4]string{"Alice", "a@xcom", "secret1", "secret1"}, "Please enter a valid email address"},
		{"space in email", [4]string{"Alice", "a b@x.com", "secret1", "secret1"}, "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)

			account, err := m.Register(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			require.Error(t, err)
			assert.Nil(t, account)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)

			// A rejected signup changes nothing
			assert.Nil(t, m.Current())
			assert.Empty(t, m.accounts())
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	m, _ := newTestManager(t)

	account, err := m.Register("Alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, "alice@x.com", account.Email)
	assert.NotEmpty(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	// Signup logs the new account in
	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, account.ID, current.ID)
}

func TestRegisterTrimsInput(t *testing.T) {
	m, _ := newTestManager(t)

	account, err := m.Register("  Alice  ", "  alice@x.com  ", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.Name)
	assert.Equal(t, "alice@x.com", account.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Register("Alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = m.Register("Other Alice", "alice@x.com", "different", "different")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "An account with this email already exists", verr.Message)

	// Directory still has exactly one account
	assert.Len(t, m.accounts(), 1)
}

func TestAuthenticate(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Register("Alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)
	require.NoError(t, m.Logout())

	account, err := m.Authenticate("alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.Name)

	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, account.ID, current.ID)
}

func TestAuthenticateUnknownAccount(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Authenticate("nobody@x.com", "whatever")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, m.Current())
}

func TestAuthenticateBadPasswordKeepsSession(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Register("Alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)
	_, err = m.Register("Bob", "bob@x.com", "secret2", "secret2")
	require.NoError(t, err)

	// Bob is current; a failed login must not change that
	_, err = m.Authenticate("alice@x.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredential)

	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Bob", current.Name)
}

func TestLogout(t *testing.T) {
	m, s := newTestManager(t)

	_, err := m.Register("Alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.Nil(t, m.Current())

	// The account directory is untouched
	assert.Len(t, m.accounts(), 1)

	// Logging out twice is fine
	require.NoError(t, m.Logout())

	// And the account can log back in
	_, ok, err := s.Get(store.KeyAccounts)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = m.Authenticate("alice@x.com", "secret1")
	require.NoError(t, err)
}

func TestCorruptSessionTreatedAsLoggedOut(t *testing.T) {
	m, s := newTestManager(t)

	require.NoError(t, s.Put(store.KeySession, "{corrupt"))
	assert.Nil(t, m.Current())
}

func TestCorruptDirectoryTreatedAsEmpty(t *testing.T) {
	m, s := newTestManager(t)

	require.NoError(t, s.Put(store.KeyAccounts, "not json at all"))

	_, err := m.Authenticate("alice@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// Registration still works on top of the corrupt directory
	_, err = m.Register("Alice", "alice@x.com", "secret1", "secret1")
	require.NoError(t, err)
}

package store

// Persisted key layout. Every account's task list lives under its own
// key; the lists are never merged.
const (
	KeyAccounts = "accounts_directory"
	KeySession  = "current_session"

	tasksKeyPrefix = "tasks_"
)

// TasksKey maps an account ID to the storage key holding that
// account's task list.
func TasksKey(accountID string) string {
	return tasksKeyPrefix + accountID
}

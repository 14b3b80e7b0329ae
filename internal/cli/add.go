package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/taskflow/internal/auth"
	"github.com/existflow/taskflow/internal/store"
	"github.com/existflow/taskflow/internal/task"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a new task",
	Long: `Add a new task to your list.

Examples:
  taskflow add "Buy groceries"
  taskflow add Water the plants`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

// openEngine opens the store and builds a task engine for the current
// session. The returned engine is detached when no one is logged in.
func openEngine() (*store.Store, *task.Engine, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, task.NewEngine(st, auth.NewManager(st)), nil
}

const notLoggedIn = "Not logged in. Run 'taskflow login' or 'taskflow signup' first."

func runAdd(cmd *cobra.Command, args []string) error {
	st, eng, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	if eng.Account() == nil {
		fmt.Println(notLoggedIn)
		return nil
	}

	t, err := eng.Add(strings.Join(args, " "))
	var verr *task.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Printf("✗ %s\n", verr.Message)
		return nil
	case errors.Is(err, task.ErrSaveFailed):
		fmt.Println("✗ Could not save your tasks. Check the log for details.")
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("✓ Added #%d: \"%s\"\n", t.ID, t.Text)
	return nil
}

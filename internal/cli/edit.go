package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/taskflow/internal/task"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id] [new text]",
	Short: "Change a task's text",
	Long: `Replace a task's text.

Examples:
  taskflow edit 3 "Buy oat milk instead"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	st, eng, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	if eng.Account() == nil {
		fmt.Println(notLoggedIn)
		return nil
	}

	t, err := eng.Edit(id, strings.Join(args[1:], " "))
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

	if t == nil {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	fmt.Printf("✓ Updated #%d: \"%s\"\n", t.ID, t.Text)
	return nil
}

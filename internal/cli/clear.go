package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/taskflow/internal/task"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	st, eng, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	if eng.Account() == nil {
		fmt.Println(notLoggedIn)
		return nil
	}

	count, err := eng.ClearCompleted()
	if errors.Is(err, task.ErrSaveFailed) {
		fmt.Println("✗ Could not save your tasks. Check the log for details.")
		return nil
	}
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Println("No completed tasks to clear.")
		return nil
	}

	fmt.Printf("🧹 Cleared %d completed task(s).\n", count)
	return nil
}

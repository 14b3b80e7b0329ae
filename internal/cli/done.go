package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/existflow/taskflow/internal/model"
	"github.com/existflow/taskflow/internal/task"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Toggle a task's completed state",
	Long: `Mark a task as done, or reopen it if it is already done.

Examples:
  taskflow done 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	return id, nil
}

func findTask(tasks []model.Task, id int64) *model.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
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

	found, err := eng.Toggle(id)
	if errors.Is(err, task.ErrSaveFailed) {
		fmt.Println("✗ Could not save your tasks. Check the log for details.")
		return nil
	}
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	t := findTask(eng.Filtered(model.FilterAll), id)
	if t != nil && t.Completed {
		fmt.Printf("✓ Completed: \"%s\"\n", t.Text)
	} else if t != nil {
		fmt.Printf("○ Reopened: \"%s\"\n", t.Text)
	}
	return nil
}

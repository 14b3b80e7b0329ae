package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/taskflow/internal/config"
	"github.com/existflow/taskflow/internal/model"
	"github.com/existflow/taskflow/internal/task"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its ID.

Examples:
  taskflow delete 3
  taskflow rm 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	t := findTask(eng.Filtered(model.FilterAll), id)
	if t == nil {
		fmt.Printf("Task not found: %d\n", id)
		return nil
	}

	cfg, _ := config.Load() // Ignore error, use defaults
	if cfg != nil && cfg.ConfirmDelete {
		fmt.Printf("About to delete: \"%s\" (#%d)\n", t.Text, t.ID)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	text := t.Text
	_, err = eng.Remove(id)
	if errors.Is(err, task.ErrSaveFailed) {
		fmt.Println("✗ Could not save your tasks. Check the log for details.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("🗑  Deleted: \"%s\"\n", text)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/existflow/taskflow/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List your tasks, newest first.

Examples:
  taskflow list
  taskflow list --filter pending
  taskflow list --filter completed`,
	RunE: runList,
}

var listFilter string

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "Filter: all, pending or completed")
}

func runList(cmd *cobra.Command, args []string) error {
	st, eng, err := openEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	account := eng.Account()
	if account == nil {
		fmt.Println(notLoggedIn)
		return nil
	}

	filter := model.ParseFilter(listFilter)
	tasks := eng.Filtered(filter)

	if len(tasks) == 0 {
		switch filter {
		case model.FilterPending:
			fmt.Println("No pending tasks. All done!")
		case model.FilterCompleted:
			fmt.Println("No completed tasks yet.")
		default:
			fmt.Println("No tasks yet. Add one with: taskflow add \"Your task\"")
		}
		return nil
	}

	total, completed := eng.Stats()
	fmt.Printf("\n📋 %s's tasks (%d total, %d completed)\n", account.Name, total, completed)
	fmt.Println(strings.Repeat("─", 50))

	for _, t := range tasks {
		icon := "[ ]"
		if t.Completed {
			icon = "[x]"
		}
		fmt.Printf("  %s  #%-4d %-36s %s\n", icon, t.ID, t.Text, t.CreatedAt.Format("Jan 2"))
	}
	fmt.Println()

	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts for the current account",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
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

	total, completed := eng.Stats()
	fmt.Printf("%s: %d task(s), %d completed, %d pending\n",
		account.Name, total, completed, total-completed)
	return nil
}

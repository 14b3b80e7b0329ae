package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/existflow/taskflow/internal/auth"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an account",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current account",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in account",
	RunE:  runWhoami,
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func readPassword(prompt string) string {
	fmt.Print(prompt)
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return string(passwordBytes)
}

func runSignup(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	reader := bufio.NewReader(os.Stdin)
	name := readLine(reader, "Name: ")
	email := readLine(reader, "Email: ")
	password := readPassword("Password: ")
	confirm := readPassword("Confirm Password: ")

	account, err := auth.NewManager(st).Register(name, email, password, confirm)
	var verr *auth.ValidationError
	if errors.As(err, &verr) {
		fmt.Printf("✗ %s\n", verr.Message)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Account created. Logged in as %s <%s>\n", account.Name, account.Email)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	reader := bufio.NewReader(os.Stdin)
	email := readLine(reader, "Email: ")
	password := readPassword("Password: ")

	account, err := auth.NewManager(st).Authenticate(email, password)
	switch {
	case errors.Is(err, auth.ErrAccountNotFound):
		fmt.Println("✗ Account not found. Check your email or run 'taskflow signup'.")
		return nil
	case errors.Is(err, auth.ErrBadCredential):
		fmt.Println("✗ Incorrect password. Please try again.")
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("✓ Logged in as %s <%s>\n", account.Name, account.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	mgr := auth.NewManager(st)
	if mgr.Current() == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := mgr.Logout(); err != nil {
		return err
	}
	fmt.Println("✓ Logged out. Your tasks are kept for your next login.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	account := auth.NewManager(st).Current()
	if account == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", account.Name, account.Email)
	return nil
}

// Package auth owns the directory of registered accounts and the
// single persisted "currently authenticated" pointer. It has no
// knowledge of tasks; the task engine asks it who is current.
package auth

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/existflow/taskflow/internal/logger"
	"github.com/existflow/taskflow/internal/model"
	"github.com/existflow/taskflow/internal/store"
)

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Manager performs registration, credential checks and session
// tracking against the key-value store.
type Manager struct {
	store *store.Store
}

// NewManager creates a manager on top of the given store.
func NewManager(s *store.Store) *Manager {
	return &Manager{store: s}
}

// Register validates the signup input, appends a new account to the
// persisted directory and makes it the current session.
func (m *Manager) Register(name, email, password, confirm string) (*model.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	if name == "" || email == "" || password == "" || confirm == "" {
		return nil, validationErr("Please fill in all fields")
	}
	if password != confirm {
		return nil, validationErr("Passwords do not match")
	}
	if len(password) < minPasswordLen {
		return nil, validationErr(fmt.Sprintf("Password must be at least %d characters long", minPasswordLen))
	}
	if !emailRe.MatchString(email) {
		return nil, validationErr("Please enter a valid email address")
	}

	accounts := m.accounts()
	for _, a := range accounts {
		if a.Email == email {
			return nil, validationErr("An account with this email already exists")
		}
	}

	account := model.Account{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}

	accounts = append(accounts, account)
	if err := m.store.PutJSON(store.KeyAccounts, accounts); err != nil {
		logger.Error("Failed to save accounts", logger.F("error", err))
		return nil, fmt.Errorf("save accounts: %w", err)
	}

	if err := m.setSession(account); err != nil {
		return nil, err
	}

	logger.Info("Account registered", logger.F("email", email), logger.F("id", account.ID))
	return &account, nil
}

// Authenticate checks the email/password pair and, on success, makes
// the matching account the current session. The session is left
// untouched on any failure.
func (m *Manager) Authenticate(email, password string) (*model.Account, error) {
	email = strings.TrimSpace(email)

	for _, a := range m.accounts() {
		if a.Email != email {
			continue
		}
		if a.Password != password {
			logger.Warn("Login rejected", logger.F("email", email))
			return nil, ErrBadCredential
		}
		account := a
		if err := m.setSession(account); err != nil {
			return nil, err
		}
		logger.Info("Login", logger.F("email", email))
		return &account, nil
	}

	logger.Warn("Login for unknown account", logger.F("email", email))
	return nil, ErrAccountNotFound
}

// Current returns the persisted session account, or nil when no one
// is logged in or the stored session cannot be read.
func (m *Manager) Current() *model.Account {
	var account model.Account
	ok, err := m.store.GetJSON(store.KeySession, &account)
	if err != nil {
		logger.Warn("Failed to read session, treating as logged out", logger.F("error", err))
		return nil
	}
	if !ok {
		return nil
	}
	return &account
}

// Logout clears the persisted session pointer. The account and its
// tasks are untouched.
func (m *Manager) Logout() error {
	if err := m.store.Delete(store.KeySession); err != nil {
		logger.Error("Failed to clear session", logger.F("error", err))
		return fmt.Errorf("clear session: %w", err)
	}
	logger.Info("Logout")
	return nil
}

// accounts loads the account directory. A missing or unreadable
// directory degrades to empty, matching the store-is-corrupt ==
// store-is-empty policy.
func (m *Manager) accounts() []model.Account {
	var accounts []model.Account
	if _, err := m.store.GetJSON(store.KeyAccounts, &accounts); err != nil {
		logger.Warn("Failed to load accounts, treating as empty", logger.F("error", err))
		return nil
	}
	return accounts
}

func (m *Manager) setSession(account model.Account) error {
	if err := m.store.PutJSON(store.KeySession, account); err != nil {
		logger.Error("Failed to save session", logger.F("error", err))
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

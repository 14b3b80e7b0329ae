package auth

import "errors"

var (
	// ErrAccountNotFound means no account is registered for the email.
	ErrAccountNotFound = errors.New("account not found")
	// ErrBadCredential means the account exists but the password is wrong.
	ErrBadCredential = errors.New("incorrect password")
)

// ValidationError reports rejected signup input. It is always
// recoverable; the message is meant to be shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

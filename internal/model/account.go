package model

import "time"

// Account represents a registered identity. Tasks are scoped to an
// account by its ID.
//
// The password is stored verbatim: this is a local, demo-grade trust
// model with no network surface. Anything beyond that needs a salted
// hash here instead.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

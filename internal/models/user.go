// Package models defines the persisted data shapes shared by the
// repositories and the CLI.
package models

// User is a stored credential record. Records are created on registration
// and never mutated or deleted afterwards.
//
// The password is kept in plaintext: this is a demo account manager by
// design. Hashing would be a local change inside the users package.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

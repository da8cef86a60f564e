package models

import "time"

// User is an account record. Password holds the bcrypt hash, never the
// plaintext. Deleted users are kept as rows but excluded from lookups.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

package models

import "time"

// User is an account row in the users table. Rows are created on registration
// and read on login; the application never updates or deletes them (the
// useradmin CLI does that out of band).
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Public returns the fields safe to send to the client.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProgressRecord tracks one user's state for one module. Uniqueness is
// enforced on the (UserID, ModuleID) pair; saves are last-write-wins.
type ProgressRecord struct {
	UserID       int64     `json:"user_id"`
	ModuleID     int       `json:"module_id"`
	Completed    bool      `json:"completed"`
	Score        int       `json:"score"`
	TimeSpentSec int       `json:"time_spent"`
	LastAccessed time.Time `json:"last_accessed"`
}

// ProgressView is a progress row joined with the module title from the
// catalog. Title stays empty when the module id is unknown; progress is not
// referentially bound to the static catalog.
type ProgressView struct {
	ModuleID     int       `json:"module_id"`
	ModuleTitle  string    `json:"module_title,omitempty"`
	Completed    bool      `json:"completed"`
	Score        int       `json:"score"`
	TimeSpentSec int       `json:"time_spent"`
	LastAccessed time.Time `json:"last_accessed"`
}

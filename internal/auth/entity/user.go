package entity

import "time"

// User is a registered account as stored by the credential store.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	DateJoined   time.Time
	LastLogin    *time.Time
	UpdatedAt    time.Time
}

// NewUser carries the fields required to create an account.
type NewUser struct {
	ID       int64
	Email    string
	FullName string
	Phone    string
}

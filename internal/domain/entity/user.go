package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User is an administrator or a branch manager. Username and Role never change after creation.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash
	Role         string // admin, manager
	ShopID       string // assigned shop, managers only; empty otherwise
	Name         string
	Contact      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager reports whether the user is a branch manager.
func (u *User) IsManager() bool { return u.Role == RoleManager }

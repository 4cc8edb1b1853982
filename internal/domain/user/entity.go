package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Organization administrator - full access
	RoleManager Role = "manager" // Manages a team of users
	RoleUser    Role = "user"    // Regular employee account
)

func IsValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Role         Role
	ManagerID    *string // only meaningful when Role == RoleUser
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	ManagerName *string
}

// IsAdmin checks if the user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if the user is a manager or administrator
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// DisplayName returns the full name, falling back to the username.
func (u *User) DisplayName() string {
	first := ""
	last := ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return u.Username
	}
}

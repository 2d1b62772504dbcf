package models

import (
	"fmt"
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// UserStatus marks whether an account may sign in
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     Role       `json:"role"`
	Status   UserStatus `json:"status"`
	JoinedAt time.Time  `json:"joined_at"`
}

// ParseRole rejects anything outside the known role set rather than
// rendering an "unknown" placeholder, so schema drift surfaces loudly.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleStaff, RoleCustomer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case UserActive, UserInactive:
		return UserStatus(s), nil
	}
	return "", fmt.Errorf("unknown user status %q", s)
}

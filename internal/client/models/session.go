// Package models holds the client-side records mirrored from the backend
// DTOs, plus the little logic that lives on them: role checks, expiry
// classification, duplicate detection and leave editability.
package models

import "slices"

// Role names as issued by the backend.
const (
	RoleRoot       = "ROOT"
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleUser       = "USER"
)

type User struct {
	ID               int64    `json:"id"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	Roles            []string `json:"roles"`
	OrganizationUUID string   `json:"organizationUuid,omitempty"`
	EmployeeID       *int64   `json:"employeeId,omitempty"`
}

func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

func (u User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// IsRoot reports whether the user manages organizations rather than
// belonging to one.
func (u User) IsRoot() bool {
	return u.HasRole(RoleRoot)
}

// Session is what a successful login returns and what the client persists.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}

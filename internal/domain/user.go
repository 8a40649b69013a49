package domain

import "time"

// Role enumerates supported account roles.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// User represents a registered account on the platform.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	IdeaCount    int // derived, populated by list/profile queries
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   string
	Role Role
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents a user's role, both on the account record and
// within a team membership.
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleOwner  UserRole = "owner"
)

// User represents a user entity. Users are never hard-deleted; DeletedAt
// marks the account as removed.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         null.String `json:"name,omitempty"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	DeletedAt    *time.Time  `json:"-"`
}

// DisplayName returns the name to show in member lists, falling back to
// the email address.
func (u *User) DisplayName() string {
	if u.Name.Valid && u.Name.String != "" {
		return u.Name.String
	}
	return u.Email
}

// UserSummary is the minimal user projection joined into member lists.
type UserSummary struct {
	ID    uuid.UUID   `json:"id"`
	Name  null.String `json:"name,omitempty"`
	Email string      `json:"email"`
}

// CreateUserInput represents input for user registration
type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"omitempty,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

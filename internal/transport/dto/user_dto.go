package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// SignupRequest defines the structure for creating a new account.
type SignupRequest struct {
	Firstname string `json:"firstname" validate:"required,min=3,max=100"`
	Lastname  string `json:"lastname" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// LoginRequest defines the structure for authenticating.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LogoutRequest carries the presented token to invalidate.
type LogoutRequest struct {
	UserID uuid.UUID `json:"-"`
	Token  string    `json:"-"`
	All    bool      `json:"-"` // invalidate every active token
}

// UserResponse is the account payload returned to clients (no secrets).
type UserResponse struct {
	ID             uuid.UUID       `json:"id"`
	Firstname      string          `json:"firstname"`
	Lastname       string          `json:"lastname"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	Phone          string          `json:"phone,omitempty"`
	Location       string          `json:"location,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	Skills         []string        `json:"skills"`
	ProfilePicture string          `json:"profile_picture,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AuthResponse bundles the account with a freshly issued token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

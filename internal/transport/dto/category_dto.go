package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest defines the structure for creating a category.
type CreateCategoryRequest struct {
	CreatedBy   uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,min=2,max=50"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Color       string    `json:"color" validate:"omitempty,hexcolor"`
	Icon        string    `json:"icon" validate:"omitempty,max=50"`
}

// UpdateCategoryRequest patches a category's name or description.
type UpdateCategoryRequest struct {
	ID          uuid.UUID `json:"-"`
	UserID      uuid.UUID `json:"-"`
	UserRole    string    `json:"-"`
	Name        *string   `json:"name" validate:"omitempty,min=2,max=50"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	Color       *string   `json:"color" validate:"omitempty,hexcolor"`
	Icon        *string   `json:"icon" validate:"omitempty,max=50"`
	IsActive    *bool     `json:"is_active"`
}

// DeleteCategoryRequest identifies a category to delete and the caller.
type DeleteCategoryRequest struct {
	ID       uuid.UUID `json:"-"`
	UserID   uuid.UUID `json:"-"`
	UserRole string    `json:"-"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Color       string     `json:"color"`
	Icon        string     `json:"icon,omitempty"`
	IsActive    bool       `json:"is_active"`
	JobCount    int        `json:"job_count"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

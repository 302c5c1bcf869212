package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileRequest patches the caller's own profile fields.
type UpdateProfileRequest struct {
	UserID         uuid.UUID `json:"-"`
	Firstname      *string   `json:"firstname" validate:"omitempty,min=3,max=50"`
	Lastname       *string   `json:"lastname" validate:"omitempty,min=3,max=50"`
	Phone          *string   `json:"phone" validate:"omitempty,max=30"`
	Location       *string   `json:"location" validate:"omitempty,max=100"`
	Bio            *string   `json:"bio" validate:"omitempty,max=1000"`
	Skills         *[]string `json:"skills" validate:"omitempty,max=50,dive,min=1,max=50"`
	ProfilePicture *string   `json:"profile_picture" validate:"omitempty,url,max=500"`
}

// UpdateProfilePictureRequest replaces the caller's profile picture URL.
type UpdateProfilePictureRequest struct {
	UserID         uuid.UUID `json:"-"`
	ProfilePicture string    `json:"profile_picture" validate:"required,url,max=500"`
}

// PublicProfileResponse is the profile view visible to other users.
type PublicProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Firstname      string    `json:"firstname"`
	Lastname       string    `json:"lastname"`
	Location       string    `json:"location,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProfileResponse is the caller's full profile view.
type ProfileResponse struct {
	User   UserResponse    `json:"user"`
	Resume *ResumeMetadata `json:"resume,omitempty"`
}

// ResumeMetadata describes an uploaded resume without its content.
type ResumeMetadata struct {
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// UploadResumeRequest carries a parsed multipart resume upload.
type UploadResumeRequest struct {
	UserID      uuid.UUID `json:"-"`
	Name        string    `json:"-"`
	ContentType string    `json:"-"`
	Data        []byte    `json:"-"`
}

// ResumeDownload carries the stored resume content for serving.
type ResumeDownload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	UserID          uuid.UUID `json:"-"`
	CurrentPassword string    `json:"current_password" validate:"required"`
	NewPassword     string    `json:"new_password" validate:"required,min=6"`
}

// DeleteAccountRequest confirms account removal with the caller's password.
type DeleteAccountRequest struct {
	UserID   uuid.UUID `json:"-"`
	Password string    `json:"password" validate:"required"`
}

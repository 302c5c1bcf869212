package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const maxResumeSize = 5 << 20 // 5 MiB

// resumeContentTypes are the accepted upload formats.
var resumeContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// profileService implements ProfileService.
type profileService struct {
	db        storage.TxBeginner
	userRepo  storage.UserRepository
	jobRepo   storage.JobRepository
	tokenRepo storage.TokenRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db storage.TxBeginner, userRepo storage.UserRepository, jobRepo storage.JobRepository, tokenRepo storage.TokenRepository) ProfileService {
	return &profileService{db: db, userRepo: userRepo, jobRepo: jobRepo, tokenRepo: tokenRepo}
}

// Compile-time check to ensure profileService implements ProfileService
var _ ProfileService = (*profileService)(nil)

// GetProfile returns the caller's account with resume metadata when one is
// uploaded.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "get profile")
	}

	out := &dto.ProfileResponse{User: MapUserToResponse(user)}

	resume, err := s.userRepo.GetResume(ctx, userID)
	if err == nil {
		out.Resume = &dto.ResumeMetadata{
			Name:        resume.Name,
			ContentType: resume.ContentType,
			Size:        resume.Size,
			UploadedAt:  resume.UploadedAt,
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, MapRepoError(err, "get profile")
	}

	return out, nil
}

// UpdateProfile applies a partial patch to the caller's own profile.
func (s *profileService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if _, err := s.userRepo.Update(ctx, req); err != nil {
		return nil, MapRepoError(err, "update profile")
	}
	return s.GetProfile(ctx, req.UserID)
}

// GetPublicProfile returns the subset of a user's profile visible to others.
func (s *profileService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*dto.PublicProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "get public profile")
	}
	return &dto.PublicProfileResponse{
		ID:             user.ID,
		Firstname:      user.Firstname,
		Lastname:       user.Lastname,
		Location:       user.Location,
		Bio:            user.Bio,
		Skills:         user.Skills,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}, nil
}

// UpdateProfilePicture replaces only the profile picture URL.
func (s *profileService) UpdateProfilePicture(ctx context.Context, req *dto.UpdateProfilePictureRequest) (*dto.ProfileResponse, error) {
	patch := &dto.UpdateProfileRequest{
		UserID:         req.UserID,
		ProfilePicture: &req.ProfilePicture,
	}
	return s.UpdateProfile(ctx, patch)
}

// UploadResume validates and stores the resume upload.
func (s *profileService) UploadResume(ctx context.Context, req *dto.UploadResumeRequest) (*dto.ResumeMetadata, error) {
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("%w: empty resume upload", ErrValidation)
	}
	if len(req.Data) > maxResumeSize {
		return nil, fmt.Errorf("%w: resume exceeds 5MB", ErrValidation)
	}
	if !resumeContentTypes[req.ContentType] {
		return nil, fmt.Errorf("%w: resume must be PDF, DOC or DOCX", ErrValidation)
	}

	resume := &models.Resume{
		Name:        req.Name,
		Data:        req.Data,
		ContentType: req.ContentType,
		Size:        int64(len(req.Data)),
		UploadedAt:  time.Now(),
	}
	if err := s.userRepo.SetResume(ctx, req.UserID, resume); err != nil {
		return nil, MapRepoError(err, "upload resume")
	}

	log.Printf("ProfileService: Resume uploaded for user %s (%d bytes)", req.UserID, resume.Size)
	return &dto.ResumeMetadata{
		Name:        resume.Name,
		ContentType: resume.ContentType,
		Size:        resume.Size,
		UploadedAt:  resume.UploadedAt,
	}, nil
}

// GetResume loads the stored resume for download.
func (s *profileService) GetResume(ctx context.Context, userID uuid.UUID) (*dto.ResumeDownload, error) {
	resume, err := s.userRepo.GetResume(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "download resume")
	}
	return &dto.ResumeDownload{
		Name:        resume.Name,
		ContentType: resume.ContentType,
		Data:        resume.Data,
	}, nil
}

// DeleteResume removes the stored resume.
func (s *profileService) DeleteResume(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.ClearResume(ctx, userID); err != nil {
		return MapRepoError(err, "delete resume")
	}
	return nil
}

// ChangePassword rotates the caller's password after verifying the current
// one, then invalidates every other session.
func (s *profileService) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return MapRepoError(err, "change password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Rotation and revocation commit together: no window where the new
	// password is live while old sessions survive.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("ProfileService: Error beginning password change transaction: %v", err)
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.userRepo.WithTx(tx).UpdatePassword(ctx, req.UserID, string(hash)); err != nil {
		return MapRepoError(err, "change password")
	}
	if err := s.tokenRepo.WithTx(tx).RemoveAll(ctx, req.UserID); err != nil {
		return MapRepoError(err, "revoke sessions")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("ProfileService: Error committing password change transaction: %v", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteAccount removes the caller's account. Posters must close out their
// Draft and Published jobs first.
func (s *profileService) DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return MapRepoError(err, "delete account")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return ErrInvalidCredentials
	}

	liveJobs := 0
	if user.Role == models.RoleAdmin {
		counts, err := s.jobRepo.CountByPosterAndStatus(ctx, req.UserID)
		if err != nil {
			return MapRepoError(err, "delete account")
		}
		liveJobs = counts[models.JobStatusDraft] + counts[models.JobStatusPublished]
	}
	if !policy.CanDeleteAccount(user.Role, liveJobs) {
		return fmt.Errorf("%w: close or delete your %d live jobs first", ErrConflict, liveJobs)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("ProfileService: Error beginning account deletion transaction: %v", err)
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.tokenRepo.WithTx(tx).RemoveAll(ctx, req.UserID); err != nil {
		return MapRepoError(err, "delete account")
	}
	if err := s.userRepo.WithTx(tx).Delete(ctx, req.UserID); err != nil {
		return MapRepoError(err, "delete account")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("ProfileService: Error committing account deletion transaction: %v", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("ProfileService: Account deleted: %s", req.UserID)
	return nil
}

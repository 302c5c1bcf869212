package services

import (
	"bytes"
	"context"
	"testing"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProfileServiceTest() (context.Context, ProfileService, *stubTxBeginner, *mockUserRepo, *mockJobRepo, *mockTokenRepo) {
	db := &stubTxBeginner{}
	userRepo := &mockUserRepo{}
	jobRepo := &mockJobRepo{}
	tokenRepo := &mockTokenRepo{}
	return context.Background(), NewProfileService(db, userRepo, jobRepo, tokenRepo), db, userRepo, jobRepo, tokenRepo
}

func TestProfileService_UploadResume_RejectsWrongType(t *testing.T) {
	ctx, svc, _, userRepo, _, _ := setupProfileServiceTest()

	_, err := svc.UploadResume(ctx, &dto.UploadResumeRequest{
		UserID:      uuid.New(),
		Name:        "resume.exe",
		ContentType: "application/octet-stream",
		Data:        []byte("MZ"),
	})

	require.ErrorIs(t, err, ErrValidation)
	userRepo.AssertNotCalled(t, "SetResume", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UploadResume_RejectsOversized(t *testing.T) {
	ctx, svc, _, _, _, _ := setupProfileServiceTest()

	_, err := svc.UploadResume(ctx, &dto.UploadResumeRequest{
		UserID:      uuid.New(),
		Name:        "resume.pdf",
		ContentType: "application/pdf",
		Data:        bytes.Repeat([]byte{0x25}, maxResumeSize+1),
	})

	require.ErrorIs(t, err, ErrValidation)
}

func TestProfileService_UploadResume_Success(t *testing.T) {
	ctx, svc, _, userRepo, _, _ := setupProfileServiceTest()

	userID := uuid.New()
	userRepo.On("SetResume", ctx, userID, mock.AnythingOfType("*models.Resume")).Return(nil)

	meta, err := svc.UploadResume(ctx, &dto.UploadResumeRequest{
		UserID:      userID,
		Name:        "resume.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", meta.Name)
	assert.Equal(t, int64(8), meta.Size)
	userRepo.AssertExpectations(t)
}

func TestProfileService_ChangePassword_WrongCurrent(t *testing.T) {
	ctx, svc, _, userRepo, _, tokenRepo := setupProfileServiceTest()

	user := &models.User{ID: uuid.New(), PasswordHash: hashOf(t, "old password")}
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

	err := svc.ChangePassword(ctx, &dto.ChangePasswordRequest{
		UserID: user.ID, CurrentPassword: "not it", NewPassword: "new password",
	})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	tokenRepo.AssertNotCalled(t, "RemoveAll", mock.Anything, mock.Anything)
}

func TestProfileService_ChangePassword_RevokesOtherSessions(t *testing.T) {
	ctx, svc, db, userRepo, _, tokenRepo := setupProfileServiceTest()

	user := &models.User{ID: uuid.New(), PasswordHash: hashOf(t, "old password")}
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdatePassword", ctx, user.ID, mock.AnythingOfType("string")).Return(nil)
	tokenRepo.On("RemoveAll", ctx, user.ID).Return(nil)

	err := svc.ChangePassword(ctx, &dto.ChangePasswordRequest{
		UserID: user.ID, CurrentPassword: "old password", NewPassword: "new password",
	})

	require.NoError(t, err)
	require.NotNil(t, db.lastTx)
	assert.True(t, db.lastTx.committed)
	tokenRepo.AssertExpectations(t)
}

func TestProfileService_ChangePassword_RollsBackWhenRevocationFails(t *testing.T) {
	ctx, svc, db, userRepo, _, tokenRepo := setupProfileServiceTest()

	user := &models.User{ID: uuid.New(), PasswordHash: hashOf(t, "old password")}
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdatePassword", ctx, user.ID, mock.AnythingOfType("string")).Return(nil)
	tokenRepo.On("RemoveAll", ctx, user.ID).Return(assert.AnError)

	err := svc.ChangePassword(ctx, &dto.ChangePasswordRequest{
		UserID: user.ID, CurrentPassword: "old password", NewPassword: "new password",
	})

	// The new hash must not land while old sessions stay alive.
	require.Error(t, err)
	require.NotNil(t, db.lastTx)
	assert.True(t, db.lastTx.rolledBack)
	assert.False(t, db.lastTx.committed)
}

func TestProfileService_DeleteAccount_AdminBlockedByLiveJobs(t *testing.T) {
	ctx, svc, _, userRepo, jobRepo, _ := setupProfileServiceTest()

	user := &models.User{ID: uuid.New(), Role: models.RoleAdmin, PasswordHash: hashOf(t, "pw")}
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	jobRepo.On("CountByPosterAndStatus", ctx, user.ID).Return(map[models.JobStatus]int{
		models.JobStatusPublished: 2,
		models.JobStatusClosed:    5,
	}, nil)

	err := svc.DeleteAccount(ctx, &dto.DeleteAccountRequest{UserID: user.ID, Password: "pw"})

	require.ErrorIs(t, err, ErrConflict)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteAccount_ApplicantAlwaysAllowed(t *testing.T) {
	ctx, svc, _, userRepo, jobRepo, tokenRepo := setupProfileServiceTest()

	user := &models.User{ID: uuid.New(), Role: models.RoleUser, PasswordHash: hashOf(t, "pw")}
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	tokenRepo.On("RemoveAll", ctx, user.ID).Return(nil)
	userRepo.On("Delete", ctx, user.ID).Return(nil)

	err := svc.DeleteAccount(ctx, &dto.DeleteAccountRequest{UserID: user.ID, Password: "pw"})

	require.NoError(t, err)
	jobRepo.AssertNotCalled(t, "CountByPosterAndStatus", mock.Anything, mock.Anything)
	userRepo.AssertExpectations(t)
}

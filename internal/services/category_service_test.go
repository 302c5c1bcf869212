package services

import (
	"context"
	"testing"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCategoryServiceTest() (context.Context, CategoryService, *mockCategoryRepo, *mockJobRepo) {
	catRepo := &mockCategoryRepo{}
	jobRepo := &mockJobRepo{}
	return context.Background(), NewCategoryService(catRepo, jobRepo), catRepo, jobRepo
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	ctx, svc, catRepo, _ := setupCategoryServiceTest()

	catRepo.On("Create", ctx, mock.AnythingOfType("*models.Category")).Return(nil, storage.ErrConflict)

	_, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: "Engineering", CreatedBy: uuid.New()})

	require.ErrorIs(t, err, ErrConflict)
}

func TestCategoryService_DeleteCategory_BlockedByLiveJobs(t *testing.T) {
	ctx, svc, catRepo, jobRepo := setupCategoryServiceTest()

	creatorID := uuid.New()
	cat := &models.Category{ID: uuid.New(), Name: "Engineering", CreatedBy: &creatorID}

	catRepo.On("GetByID", ctx, cat.ID).Return(cat, nil)
	jobRepo.On("CountLiveByCategory", ctx, cat.ID).Return(4, nil)

	err := svc.DeleteCategory(ctx, &dto.DeleteCategoryRequest{ID: cat.ID, UserID: creatorID, UserRole: string(models.RoleAdmin)})

	require.ErrorIs(t, err, ErrCategoryInUse)
	catRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteCategory_NoLiveJobs(t *testing.T) {
	ctx, svc, catRepo, jobRepo := setupCategoryServiceTest()

	creatorID := uuid.New()
	cat := &models.Category{ID: uuid.New(), Name: "Engineering", CreatedBy: &creatorID}

	catRepo.On("GetByID", ctx, cat.ID).Return(cat, nil)
	jobRepo.On("CountLiveByCategory", ctx, cat.ID).Return(0, nil)
	catRepo.On("Delete", ctx, cat.ID).Return(nil)

	err := svc.DeleteCategory(ctx, &dto.DeleteCategoryRequest{ID: cat.ID, UserID: creatorID, UserRole: string(models.RoleAdmin)})

	require.NoError(t, err)
	catRepo.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory_NotCreator(t *testing.T) {
	ctx, svc, catRepo, _ := setupCategoryServiceTest()

	creatorID := uuid.New()
	cat := &models.Category{ID: uuid.New(), Name: "Engineering", CreatedBy: &creatorID}

	catRepo.On("GetByID", ctx, cat.ID).Return(cat, nil)

	name := "Renamed"
	_, err := svc.UpdateCategory(ctx, &dto.UpdateCategoryRequest{
		ID: cat.ID, UserID: uuid.New(), UserRole: string(models.RoleUser), Name: &name,
	})

	require.ErrorIs(t, err, ErrForbidden)
}

func TestCategoryService_RefreshJobCount(t *testing.T) {
	ctx, svc, catRepo, jobRepo := setupCategoryServiceTest()

	cat := &models.Category{ID: uuid.New(), Name: "Engineering", JobCount: 1}

	catRepo.On("GetByID", ctx, cat.ID).Return(cat, nil)
	jobRepo.On("CountPublishedByCategory", ctx, cat.ID).Return(9, nil)
	catRepo.On("SetJobCount", ctx, cat.ID, 9).Return(&models.Category{ID: cat.ID, Name: cat.Name, JobCount: 9}, nil)

	resp, err := svc.RefreshJobCount(ctx, cat.ID)

	require.NoError(t, err)
	assert.Equal(t, 9, resp.JobCount)
}

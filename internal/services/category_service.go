package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// categoryService implements CategoryService.
type categoryService struct {
	catRepo storage.CategoryRepository
	jobRepo storage.JobRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(catRepo storage.CategoryRepository, jobRepo storage.JobRepository) CategoryService {
	return &categoryService{catRepo: catRepo, jobRepo: jobRepo}
}

// Compile-time check to ensure categoryService implements CategoryService
var _ CategoryService = (*categoryService)(nil)

// CreateCategory adds a new category owned by the caller.
func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	cat := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		CreatedBy:   &req.CreatedBy,
	}

	created, err := s.catRepo.Create(ctx, cat)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: category name already exists", ErrConflict)
		}
		return nil, MapRepoError(err, "create category")
	}

	resp := MapCategoryToResponse(created)
	return &resp, nil
}

// GetCategories lists every category.
func (s *categoryService) GetCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := s.catRepo.GetAll(ctx)
	if err != nil {
		return nil, MapRepoError(err, "list categories")
	}

	out := make([]dto.CategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, MapCategoryToResponse(&cats[i]))
	}
	return out, nil
}

// GetCategoryByID loads one category.
func (s *categoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	cat, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "get category")
	}
	resp := MapCategoryToResponse(cat)
	return &resp, nil
}

// UpdateCategory patches a category the caller created, or any category for
// admins.
func (s *categoryService) UpdateCategory(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := s.catRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "update category")
	}
	if !policy.CanMutateCategory(cat, req.UserID, models.UserRole(req.UserRole)) {
		return nil, fmt.Errorf("%w: not the category creator", ErrForbidden)
	}

	updated, err := s.catRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: category name already exists", ErrConflict)
		}
		return nil, MapRepoError(err, "update category")
	}

	resp := MapCategoryToResponse(updated)
	return &resp, nil
}

// DeleteCategory removes a category once no Draft or Published job still
// references it.
func (s *categoryService) DeleteCategory(ctx context.Context, req *dto.DeleteCategoryRequest) error {
	cat, err := s.catRepo.GetByID(ctx, req.ID)
	if err != nil {
		return MapRepoError(err, "delete category")
	}
	if !policy.CanMutateCategory(cat, req.UserID, models.UserRole(req.UserRole)) {
		return fmt.Errorf("%w: not the category creator", ErrForbidden)
	}

	liveJobs, err := s.jobRepo.CountLiveByCategory(ctx, req.ID)
	if err != nil {
		return MapRepoError(err, "delete category")
	}
	if !policy.CanDeleteCategory(liveJobs) {
		return fmt.Errorf("%w: %d live jobs still use this category", ErrCategoryInUse, liveJobs)
	}

	if err := s.catRepo.Delete(ctx, req.ID); err != nil {
		return MapRepoError(err, "delete category")
	}
	return nil
}

// RefreshJobCount recomputes the cached published-job count from the jobs
// table.
func (s *categoryService) RefreshJobCount(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	if _, err := s.catRepo.GetByID(ctx, id); err != nil {
		return nil, MapRepoError(err, "refresh category job count")
	}

	count, err := s.jobRepo.CountPublishedByCategory(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, "refresh category job count")
	}

	updated, err := s.catRepo.SetJobCount(ctx, id, count)
	if err != nil {
		return nil, MapRepoError(err, "refresh category job count")
	}

	resp := MapCategoryToResponse(updated)
	return &resp, nil
}

// EnsureDefaultCategory creates the seeded category at startup when missing.
func (s *categoryService) EnsureDefaultCategory(ctx context.Context) error {
	cat, err := s.catRepo.EnsureDefault(ctx)
	if err != nil {
		return MapRepoError(err, "ensure default category")
	}
	log.Printf("CategoryService: Default category ready: %s", cat.ID)
	return nil
}

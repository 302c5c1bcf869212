package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account and session logic.
type UserService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	IsTokenActive(ctx context.Context, userID uuid.UUID, token string) (bool, error)
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*dto.JobResponse, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
	ListMyJobs(ctx context.Context, req *dto.ListMyJobsRequest) (*dto.JobListResponse, error)
	GetStatistics(ctx context.Context, posterID uuid.UUID) (*dto.JobStatisticsResponse, error)
}

// ApplicationService defines the interface for job application business logic.
type ApplicationService interface {
	ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*dto.ApplicationResponse, error)
	ListJobApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) (*dto.JobApplicationsResponse, error)
	UpdateApplicationStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) (*dto.MyApplicationsResponse, error)
}

// CategoryService defines the interface for category business logic.
type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, req *dto.DeleteCategoryRequest) error
	RefreshJobCount(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	EnsureDefaultCategory(ctx context.Context) error
}

// SearchService defines the interface for published-job search.
type SearchService interface {
	SearchJobs(ctx context.Context, req *dto.SearchJobsRequest, callerID *uuid.UUID) (*dto.SearchJobsResponse, error)
	GetSuggestions(ctx context.Context, req *dto.SuggestionsRequest) (*dto.SuggestionsResponse, error)
	GetFilters(ctx context.Context) (*dto.SearchFiltersResponse, error)
	SaveSearch(ctx context.Context, req *dto.SaveSearchRequest) (*dto.SavedSearchResponse, error)
	ListSavedSearches(ctx context.Context, userID uuid.UUID) ([]dto.SavedSearchResponse, error)
	DeleteSavedSearch(ctx context.Context, userID, id uuid.UUID) error
}

// DashboardService defines the interface for dashboard aggregation.
type DashboardService interface {
	GetStats(ctx context.Context, userID uuid.UUID, role models.UserRole) (*dto.DashboardStatsResponse, error)
	GetJobAnalytics(ctx context.Context, jobID, userID uuid.UUID) (*dto.JobAnalyticsResponse, error)
}

// ProfileService defines the interface for the caller's own account data.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*dto.PublicProfileResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UpdateProfilePicture(ctx context.Context, req *dto.UpdateProfilePictureRequest) (*dto.ProfileResponse, error)
	UploadResume(ctx context.Context, req *dto.UploadResumeRequest) (*dto.ResumeMetadata, error)
	GetResume(ctx context.Context, userID uuid.UUID) (*dto.ResumeDownload, error)
	DeleteResume(ctx context.Context, userID uuid.UUID) error
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error
}

// internal/app/app.go
package app

import (
	"jobboard-api/config"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	UserRepo        storage.UserRepository
	TokenRepo       storage.TokenRepository
	JobRepo         storage.JobRepository
	ApplicationRepo storage.ApplicationRepository
	CategoryRepo    storage.CategoryRepository
	SavedSearchRepo storage.SavedSearchRepository
	ReportRepo      storage.ReportRepository

	UserService        services.UserService
	JobService         services.JobService
	ApplicationService services.ApplicationService
	CategoryService    services.CategoryService
	SearchService      services.SearchService
	DashboardService   services.DashboardService
	ProfileService     services.ProfileService
}

// main.go

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/app"
	"jobboard-api/internal/database"
	"jobboard-api/internal/metrics"
	"jobboard-api/internal/server"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage/postgres"

	_ "jobboard-api/docs" // Swagger docs, regenerated by swag init

	"github.com/go-playground/validator/v10"
)

// tokenSweepInterval is how often expired session tokens are purged.
const tokenSweepInterval = time.Hour

// @title           Job Board API
// @version         1.0
// @description     REST API for posting jobs, applying to them and searching published listings.

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		// Search filter caching degrades gracefully without Redis.
		log.Printf("WARN: Failed to connect to Redis: %v. Continuing without cache.", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	dbPool, err := database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	metrics.Register()

	validate := validator.New()

	// --- Build Repositories ---
	postgres.SetQueryTimeout(cfg.DB.Timeout)
	userRepo := postgres.NewUserRepo(dbPool)
	tokenRepo := postgres.NewTokenRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	applicationRepo := postgres.NewApplicationRepo(dbPool)
	categoryRepo := postgres.NewCategoryRepo(dbPool)
	savedSearchRepo := postgres.NewSavedSearchRepo(dbPool)
	reportRepo := postgres.NewReportRepo(dbPool)

	// --- Build Services ---
	userService := services.NewUserService(dbPool, userRepo, tokenRepo, cfg.JWT)
	jobService := services.NewJobService(jobRepo, applicationRepo, categoryRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	categoryService := services.NewCategoryService(categoryRepo, jobRepo)
	searchService := services.NewSearchService(jobRepo, savedSearchRepo, redisClient)
	dashboardService := services.NewDashboardService(reportRepo, jobRepo)
	profileService := services.NewProfileService(dbPool, userRepo, jobRepo, tokenRepo)

	application := &app.Application{
		Config:      cfg,
		DB:          dbPool,
		RedisClient: redisClient,
		Validator:   validate,

		UserRepo:        userRepo,
		TokenRepo:       tokenRepo,
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,
		CategoryRepo:    categoryRepo,
		SavedSearchRepo: savedSearchRepo,
		ReportRepo:      reportRepo,

		UserService:        userService,
		JobService:         jobService,
		ApplicationService: applicationService,
		CategoryService:    categoryService,
		SearchService:      searchService,
		DashboardService:   dashboardService,
		ProfileService:     profileService,
	}

	// Jobs can always fall back to the default category.
	if err := categoryService.EnsureDefaultCategory(ctx); err != nil {
		log.Printf("WARN: Failed to ensure default category: %v", err)
	}

	// --- Expired Session Token Sweep ---
	go func() {
		ticker := time.NewTicker(tokenSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := tokenRepo.RemoveExpired(ctx)
				if err != nil {
					log.Printf("Token sweep failed: %v", err)
					continue
				}
				if removed > 0 {
					log.Printf("Token sweep removed %d expired tokens", removed)
				}
			}
		}
	}()

	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")
	cancel()

	log.Println("Application gracefully stopped.")
}

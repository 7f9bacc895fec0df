// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-coach/backend/config"
	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/application/usecase/auth"
	"github.com/finance-coach/backend/internal/application/usecase/goal"
	"github.com/finance-coach/backend/internal/application/usecase/planning"
	"github.com/finance-coach/backend/internal/application/usecase/progress"
	"github.com/finance-coach/backend/internal/application/usecase/snapshot"
	"github.com/finance-coach/backend/internal/infra/server/router"
	"github.com/finance-coach/backend/internal/integration/adapters"
	"github.com/finance-coach/backend/internal/integration/entrypoint/controller"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-coach/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; planning then runs without a cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	progressRepo := persistence.NewProgressRepository(db)
	snapshotRepo := persistence.NewSnapshotRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT, tokenRepo)

	var planCache adapter.PlanCache
	if redisClient != nil {
		planCache = adapters.NewRedisPlanCache(redisClient, cfg.Redis.PlanTTL)
	} else {
		slog.Info("Plan cache disabled, plans are recomputed on every request")
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Snapshot use cases
	upsertSnapshotUseCase := snapshot.NewUpsertSnapshotUseCase(snapshotRepo)
	getSnapshotUseCase := snapshot.NewGetSnapshotUseCase(snapshotRepo)

	// Goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	cancelGoalUseCase := goal.NewCancelGoalUseCase(goalRepo)

	// Progress use cases
	recordProgressUseCase := progress.NewRecordProgressUseCase(goalRepo, progressRepo)
	listProgressUseCase := progress.NewListProgressUseCase(goalRepo, progressRepo)

	// Planning
	engine := planning.NewEngine(decimal.NewFromFloat(cfg.Planning.TightHeadroom))
	computePlanUseCase := planning.NewComputePlanUseCase(snapshotRepo, goalRepo, engine, planCache)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	snapshotController := controller.NewSnapshotController(
		upsertSnapshotUseCase,
		getSnapshotUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		cancelGoalUseCase,
		recordProgressUseCase,
		listProgressUseCase,
	)

	planningController := controller.NewPlanningController(computePlanUseCase)

	// Middleware. Tests get a high login rate limit to stay deterministic.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		snapshotController,
		goalController,
		planningController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

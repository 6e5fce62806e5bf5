package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"coherence-backend/internal/account"
	googleauth "coherence-backend/internal/auth"
	"coherence-backend/internal/chat"
	"coherence-backend/internal/checkins"
	"coherence-backend/internal/healthsystems"
	"coherence-backend/internal/recommendations"
	"coherence-backend/internal/scans"
	"coherence-backend/internal/services/health"
	"coherence-backend/internal/shared/config"
	"coherence-backend/internal/shared/metrics"
	"coherence-backend/internal/shared/server/middleware"
	"coherence-backend/internal/shared/server/respond"
	"coherence-backend/internal/shared/storage/db"
	"coherence-backend/internal/usage"
	"coherence-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(rateLimits()),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var scanRepo scans.Repo
	var checkinRepo checkins.Repo
	var recRepo recommendations.Repo
	var userRepo users.Repo
	var usageSvc *usage.Service
	if sqlDB != nil {
		scanRepo = &scans.PGRepo{DB: sqlDB}
		checkinRepo = checkins.NewPGRepo(sqlDB)
		recRepo = recommendations.NewPGRepo(sqlDB)
		userRepo = &users.PGRepo{DB: sqlDB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB))
	} else {
		scanRepo = scans.NewMemoryRepo()
		checkinRepo = checkins.NewMemoryRepo()
		recRepo = recommendations.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		usageSvc = usage.NewService()
	}

	scanSvc := &scans.Service{Repo: scanRepo, Usage: usageSvc, DemoEnabled: cfg.DemoDataEnabled}
	checkinSvc := checkins.NewService(checkinRepo)
	recSvc := recommendations.NewService(recRepo)
	healthSystemsSvc := healthsystems.NewService()
	userSvc := users.NewService(userRepo)
	accountSvc := account.NewService(scanRepo, checkinRepo)
	usageHandler := usage.NewHandler(usageSvc)
	healthSvc := health.NewService()
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	users.NewHandler(userSvc).RegisterRoutes(api)
	scans.NewHandler(scanSvc).RegisterRoutes(api)
	checkins.NewHandler(checkinSvc).RegisterRoutes(api)
	healthsystems.NewHandler(healthSystemsSvc).RegisterRoutes(api)
	recommendations.NewHandler(recSvc).RegisterRoutes(api)
	if cfg.ChatMode != "off" {
		chat.NewHandler(chat.NewScriptedClient(), scanSvc).RegisterRoutes(api)
	}
	account.NewHandler(accountSvc).RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	return r
}

// rateLimits keeps the dashboard's polling reads cheaper than mutations.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet {
				switch c.FullPath() {
				case "/api/v1/scans/latest", "/api/v1/scans/:id", "/api/v1/scans/:id/systems":
					return "POLLING"
				}
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 20},
			"POLLING": {Rate: 10, Burst: 40},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

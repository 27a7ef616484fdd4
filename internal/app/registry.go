package app

import (
	"net/http"

	"go-certtrack/internal/activity"
	"go-certtrack/internal/auth"
	"go-certtrack/internal/certificate"
	"go-certtrack/internal/company"
	"go-certtrack/internal/config"
	"go-certtrack/internal/employee"
	"go-certtrack/internal/messaging/kafka"
	"go-certtrack/internal/middleware"
	"go-certtrack/internal/rbac"
	"go-certtrack/internal/rbac/infra"
	"go-certtrack/internal/shared/response"
	"go-certtrack/internal/shared/token"
	"go-certtrack/internal/storage"
	"go-certtrack/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	conns *Infra,
	proofs storage.ProofStorage,
	logger *zap.Logger,
) error {
	db, gormDB, rdb := conns.SQLDB, conns.GormDB, conns.Redis

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	certificateRepo := certificate.NewRepository(gormDB)
	activityRepo := activity.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(db, rbacRepo, enforcer, logger)

	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	analytics := certificate.NewAnalyticsCache(rdb, 0, logger)

	// --- Services ---
	authService := auth.NewService(userRepo, companyRepo, rbacService, tokens, logger)
	companyService := company.NewService(db, companyRepo, rbacRepo, userRepo, logger)
	employeeService := employee.NewService(userRepo, rbacService, rdb, analytics, logger)
	activityService := activity.NewService(activityRepo, analytics, logger)
	certificateService := certificate.NewService(
		db, certificateRepo, userRepo, outboxRepo, analytics, proofs, activityService, logger,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, tokens, cfg.App.IsProduction(), logger)
	companyHandler := company.NewHandler(companyService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	certificateHandler := certificate.NewHandler(certificateService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	router.Use(middleware.CORS(cfg.App.AllowedOrigins))
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	api := router.Group("/api")
	public := api.Group("", middleware.ContextLogger(logger))
	protected := api.Group("",
		middleware.AuthMiddleware(tokens),
		middleware.LoadSession(rbacService),
		middleware.ContextLogger(logger),
	)
	{
		auth.RegisterRoutes(public, protected, authHandler, auth.LoginLimit{
			PerSecond: cfg.RateLimit.LoginPerSecond,
			Burst:     cfg.RateLimit.LoginBurst,
		})
		company.RegisterRoutes(public, protected, companyHandler, rbacService)
		employee.RegisterRoutes(protected, employeeHandler, rbacService)
		certificate.RegisterRoutes(protected, certificateHandler, rbacService, middleware.Idempotency(rdb, logger))
		rbac.RegisterRoutes(protected, rbacHandler, rbacService)
	}

	return nil
}

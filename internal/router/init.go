package router

import (
	"github.com/oksasatya/finance-tracker-api/internal/application"
	"github.com/oksasatya/finance-tracker-api/internal/container"
	"github.com/oksasatya/finance-tracker-api/internal/interface/apierror"
	handlers "github.com/oksasatya/finance-tracker-api/internal/interface/http"
	"github.com/oksasatya/finance-tracker-api/internal/interface/middleware"
	"github.com/oksasatya/finance-tracker-api/internal/router/modules"
)

type moduleDeps struct {
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler
	Health *handlers.HealthHandler
	Gate   *middleware.Gate
}

func buildDeps() moduleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	repo := container.GetUserRepo()

	authSvc := application.NewAuthService(repo, container.GetJWT(), container.GetHasher(), logger)
	userSvc := application.NewUserService(repo, logger)

	// keep a nil publisher a nil interface
	var pub handlers.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	audit := container.GetAuditSink()

	return moduleDeps{
		Auth:   handlers.NewAuthHandler(authSvc, audit, pub, cfg, logger),
		User:   handlers.NewUserHandler(userSvc, audit, pub, cfg, logger),
		Health: handlers.NewHealthHandler(repo, cfg.StoreDriver, container.GetRedis(), logger),
		Gate:   middleware.NewGate(authSvc, apierror.NewWriter(logger, cfg.IsProduction())),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	rdb := container.GetRedis()
	deps := buildDeps()

	// global per-IP limiter; health checks are exempt
	r.Use(middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow,
		middleware.KeyByIP("global"), middleware.AllowPaths("/api/health")))

	authLimiter := middleware.RateLimit(rdb, cfg.AuthRateLimitMax, cfg.AuthRateLimitWindow,
		middleware.KeyByIP("auth"), nil)

	r.Add(modules.NewHealthModule(deps.Health))
	r.Add(modules.NewAuthModule(deps.Auth, deps.Gate, authLimiter))
	r.Add(modules.NewUserModule(deps.User, deps.Gate))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}

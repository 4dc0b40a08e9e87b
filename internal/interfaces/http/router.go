package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"portico/internal/application/permit/usecases"
	"portico/internal/infrastructure/auth"
	"portico/internal/infrastructure/config"
	"portico/internal/infrastructure/ratelimit"
	"portico/internal/infrastructure/repository"
	authhandler "portico/internal/interfaces/http/handlers/auth"
	permithandler "portico/internal/interfaces/http/handlers/permit"
	"portico/internal/interfaces/http/middleware"
	"portico/internal/shared/identity"
	"portico/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine         *gin.Engine
	permitHandler  *permithandler.Handler
	authHandler    *authhandler.Handler
	authMiddleware *middleware.AuthMiddleware
	gateLimiter    ratelimit.RateLimiter
	gateLimits     ratelimit.RateLimitConfig
	allowedOrigins []string
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	permitRepo := repository.NewPermitRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	residentRepo := repository.NewResidentRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	defaultValidity := time.Duration(cfg.Permit.DefaultValidityHours) * time.Hour

	createUC := usecases.NewCreatePermitUseCase(
		permitRepo, visitRepo, residentRepo, orderRepo,
		defaultValidity, cfg.Permit.QRTokenLength, log,
	)
	getUC := usecases.NewGetPermitUseCase(permitRepo, log)
	updateUC := usecases.NewUpdatePermitUseCase(permitRepo, orderRepo, log)
	toggleUC := usecases.NewTogglePermitUseCase(permitRepo, log)
	checkInUC := usecases.NewCheckInUseCase(permitRepo, log)
	checkOutUC := usecases.NewCheckOutUseCase(permitRepo, log)
	gateCheckUC := usecases.NewGateCheckUseCase(permitRepo, log)
	listUC := usecases.NewListPermitsUseCase(permitRepo, log)

	handler := permithandler.NewHandler(
		createUC, getUC, updateUC, toggleUC,
		checkInUC, checkOutUC, gateCheckUC, listUC, log,
	)

	jwtSvc := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)
	authHandler := authhandler.NewHandler(jwtSvc, cfg.Auth.Clients, log)

	return &Router{
		engine:         engine,
		permitHandler:  handler,
		authHandler:    authHandler,
		authMiddleware: authMiddleware,
		gateLimiter:    ratelimit.NewRedisRateLimiter(redisClient),
		gateLimits: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.Gate.ValidatePerMinute,
			RequestsPerHour:   cfg.Gate.ValidatePerHour,
		},
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/login", r.authHandler.Login)
		authRoutes.POST("/refresh", r.authHandler.Refresh)
	}

	permits := v1.Group("/entry-permissions")
	{
		// The gate terminal authenticates as a guard; validation is the
		// hot path and carries its own rate limit.
		permits.GET("/validate",
			r.authMiddleware.RequireAuth(),
			r.authMiddleware.RequireRole(identity.RoleGuard, identity.RoleAdmin),
			middleware.GateRateLimit(r.gateLimiter, r.gateLimits, r.logger),
			r.permitHandler.GateCheck,
		)

		authed := permits.Group("")
		authed.Use(r.authMiddleware.RequireAuth())
		{
			authed.POST("",
				r.authMiddleware.RequireRole(identity.RoleResident, identity.RoleAdmin),
				r.permitHandler.CreatePermit,
			)
			authed.GET("", r.permitHandler.ListPermits)
			authed.GET("/:id", r.permitHandler.GetPermit)
			authed.PUT("/:id", r.permitHandler.UpdatePermit)
			authed.PATCH("/:id/soft-delete",
				r.authMiddleware.RequireRole(identity.RoleResident, identity.RoleAdmin),
				r.permitHandler.TogglePermit,
			)

			movements := authed.Group("")
			movements.Use(r.authMiddleware.RequireRole(identity.RoleGuard, identity.RoleAdmin))
			{
				movements.PATCH("/:id/checkin", r.permitHandler.CheckIn)
				movements.PATCH("/:id/checkout", r.permitHandler.CheckOut)
			}
		}
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

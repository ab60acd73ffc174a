package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/digipodium/showcase-api/docs"
	"github.com/digipodium/showcase-api/internal/api/handler"
	"github.com/digipodium/showcase-api/internal/api/middleware"
	"github.com/digipodium/showcase-api/internal/core/domain"
	"github.com/digipodium/showcase-api/internal/core/ports"
	"github.com/digipodium/showcase-api/internal/core/service"
	"github.com/digipodium/showcase-api/internal/infrastructure/config"
	mongodb "github.com/digipodium/showcase-api/internal/infrastructure/db/mongo"
	redisdb "github.com/digipodium/showcase-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity service and recorder are constructed by the caller because
// the dispatcher's worker lifecycle belongs to main.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	activitySvc ports.ActivityService,
	recorder service.ActivityRecorder,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("showcase"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	views := redisdb.NewViewCounter(rdb)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, tokenTTL, cfg.Auth.AdminOnlyLogin)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, views, recorder, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	activityHandler := handler.NewActivityHandler(activitySvc)

	authMW := middleware.Auth(cfg.Auth.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/user/authenticate", authHandler.Authenticate)
	e.POST("/user/signup", authHandler.Signup)

	// --- User management (admin only) ---
	users := e.Group("/user", authMW, adminOnly)
	users.GET("/getall", userHandler.List)
	users.GET("/getbyid/:id", userHandler.Get)
	users.PUT("/update/:id", userHandler.Update)
	users.DELETE("/delete/:id", userHandler.Delete)
	users.GET("/count", userHandler.Count)

	// --- Project catalog (authenticated) ---
	projects := e.Group("/project", authMW)
	projects.POST("/add", projectHandler.Create)
	projects.GET("/getall", projectHandler.List)
	projects.GET("/get/:id", projectHandler.Get)
	projects.PUT("/update/:id", projectHandler.Update)
	projects.PATCH("/update/:id", projectHandler.PatchDescription)
	projects.DELETE("/delete/:id", projectHandler.Delete, adminOnly)
	projects.GET("/stats", projectHandler.Stats, adminOnly)
	projects.GET("/activity/:id", activityHandler.Trail, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

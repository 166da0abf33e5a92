package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/microblog/microblog-system/internal/api/handler"
	"github.com/microblog/microblog-system/internal/api/middleware"
	"github.com/microblog/microblog-system/internal/core/ports"
	"github.com/microblog/microblog-system/internal/core/service"
	mongodb "github.com/microblog/microblog-system/internal/infrastructure/db/mongo"
	"github.com/microblog/microblog-system/internal/infrastructure/directory"
	"github.com/microblog/microblog-system/internal/infrastructure/http/handlers"
	"github.com/microblog/microblog-system/internal/pkg/config"
)

const tokenTTL = 24 * time.Hour

// NewUserRouter builds the identity service Echo instance with all
// routes registered.
func NewUserRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("user_service", log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, service.NewPasswordHasher(), tokens, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	// GET /users/:id doubles as the directory boundary the tweet service
	// resolves authors against, so it carries no auth; mutations are
	// owner-only behind the token check.
	e.GET("/users/:id", userHandler.Get)
	e.PUT("/users/:id", userHandler.Update, authMiddleware)
	e.DELETE("/users/:id", userHandler.Delete, authMiddleware)

	// --- Health probes (no auth required) ---
	registerHealth(e, db, nil)

	return e
}

// NewTweetRouter builds the posting service Echo instance with all
// routes registered. rdb may be nil; the author cache is then skipped
// and every read resolves against the directory.
func NewTweetRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("tweet_service", log)

	// --- Dependencies ---
	tweetRepo := mongodb.NewTweetRepository(db)

	var dir ports.AuthorDirectory = directory.NewClient(cfg.Directory.BaseURL, cfg.Directory.Timeout, log)
	if rdb != nil {
		dir = directory.NewCachedDirectory(dir, rdb)
	}

	tokens := service.NewTokenIssuer(cfg.JWTSecret, tokenTTL)
	tweetService := service.NewTweetService(tweetRepo, dir, log)

	tweetHandler := handler.NewTweetHandler(tweetService)
	authMiddleware := middleware.Auth(tokens)

	// --- Tweet routes ---
	e.GET("/tweets", tweetHandler.List)
	e.GET("/tweets/:id", tweetHandler.Get)
	e.POST("/tweets", tweetHandler.Create, authMiddleware)
	e.PUT("/tweets/:id", tweetHandler.Update, authMiddleware)
	e.DELETE("/tweets/:id", tweetHandler.Delete, authMiddleware)

	// --- Health probes (no auth required) ---
	registerHealth(e, db, rdb)

	return e
}

func newEcho(subsystem string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(subsystem))

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

func registerHealth(e *echo.Echo, db *mongo.Database, rdb *redis.Client) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
}

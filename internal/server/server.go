// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"devlog/internal/auth"
	"devlog/internal/cache"
	"devlog/internal/config"
	"devlog/internal/database"
	"devlog/internal/middleware"
	"devlog/internal/models"
	"devlog/internal/repository"
	"devlog/internal/service"
	"devlog/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "auth_token"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *auth.TokenService

	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	metricsRepo    repository.MetricsRepository
	subscriberRepo repository.SubscriberRepository

	authService         *service.AuthService
	postService         *service.PostService
	metricsService      *service.MetricsService
	subscriptionService *service.SubscriptionService
	metaService         *service.MetaService
	media               *storage.MediaStore
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	media, err := storage.NewMediaStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("media store initialization failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, media)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis first.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, media *storage.MediaStore) (*Server, error) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: fiberprometheus.New("devlog-api"),
		tokens:         tokens,
		userRepo:       userRepo,
		postRepo:       postRepo,
		metricsRepo:    metricsRepo,
		subscriberRepo: subscriberRepo,
		media:          media,
	}

	server.authService = service.NewAuthService(userRepo, tokens, cfg.PasswordSalt)
	server.postService = service.NewPostService(postRepo)
	server.metricsService = service.NewMetricsService(metricsRepo)
	server.subscriptionService = service.NewSubscriptionService(subscriberRepo)
	server.metaService = service.NewMetaService(cfg.AIGatewayURL, cfg.AIModel, cfg.AIToken)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Attach session identity when present; enforcement happens per route
	// group with AuthRequired.
	app.Use(s.SessionAuth())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	// Backwards-compatible legacy route: map /health to readiness
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	authGroup.Post("/logout", s.Logout)

	// Public post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/:slug", s.GetPost)

	// Per-article counters
	metrics := api.Group("/metrics")
	metrics.Post("/view", middleware.RateLimit(
		s.redis, 60, time.Minute, "record_view"), s.RecordView)
	metrics.Post("/like", middleware.RateLimit(
		s.redis, 30, time.Minute, "record_like"), s.RecordLike)
	metrics.Get("/:slug", s.GetMetrics)

	// Newsletter
	api.Post("/subscribe", middleware.RateLimit(
		s.redis, 5, time.Minute, "subscribe"), s.Subscribe)

	// Admin routes: session cookie (or bearer token) required
	admin := api.Group("/admin", s.AuthRequired())
	admin.Post("/generate-meta", s.GenerateMeta)
	admin.Post("/posts", s.CreatePost)
	admin.Put("/posts/:slug", s.UpdatePost)
	admin.Post("/posts/:slug/cover", s.UploadCover)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The database is required;
// Redis is a cache and only degrades readiness when configured but down.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server-held resources after the HTTP listener stops.
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// attachSession verifies the session credential on the request and, when
// valid, stores the identity in Fiber locals and the request context. The
// session cookie is the primary credential; a Bearer token is accepted as a
// fallback for non-browser clients.
func (s *Server) attachSession(c *fiber.Ctx) bool {
	tokenString := c.Cookies(sessionCookieName)
	if tokenString == "" {
		tokenString = bearerToken(c)
	}
	if tokenString == "" {
		return false
	}

	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return false
	}

	c.Locals("userID", claims.UserID)
	c.Locals("userEmail", claims.Email)
	// Sync to UserContext for logging and downstream services
	ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, claims.UserID)
	c.SetUserContext(ctx)
	return true
}

// SessionAuth attaches the session identity when a valid credential is
// present and otherwise lets the request proceed unauthenticated. It never
// fails a request on its own.
func (s *Server) SessionAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.attachSession(c)
		return c.Next()
	}
}

// AuthRequired returns the authentication middleware guarding admin routes.
// Every failure (missing, expired, or tampered credential) is the same 401
// and the wrapped handler is never reached.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userID").(string); !ok && !s.attachSession(c) {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}
		return c.Next()
	}
}

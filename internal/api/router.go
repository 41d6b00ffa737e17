package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spartancutz/barber-discovery/internal/api/handler"
	"github.com/spartancutz/barber-discovery/internal/core/ports"
	"github.com/spartancutz/barber-discovery/internal/core/service"
	mongodb "github.com/spartancutz/barber-discovery/internal/infrastructure/db/mongo"
	redisdb "github.com/spartancutz/barber-discovery/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs to assemble the service
// graph.
type Dependencies struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Embedder  ports.Embedder
	Uploads   storageUploads
	Neighbors int
	Logger    zerolog.Logger
}

// storageUploads is the minimal surface the router needs from the upload store.
type storageUploads interface {
	Save(originalName string, data []byte) (string, error)
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The frontend sends credentials, so the origin is echoed back rather
	// than wildcarded.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("barbers"))

	// --- Dependencies ---
	barberRepo := mongodb.NewBarberRepository(deps.DB)
	sessionRepo := mongodb.NewSessionRepository(deps.DB)
	embeddingRepo := mongodb.NewEmbeddingRepository(deps.DB)

	embedder := redisdb.NewCachedEmbedder(deps.Embedder, deps.Redis, deps.Logger)

	barberService := service.NewBarberService(barberRepo, deps.Logger)
	sessionService := service.NewSessionService(sessionRepo, barberRepo, deps.Logger)
	imageSearchService := service.NewImageSearchService(embedder, embeddingRepo, barberRepo, deps.Neighbors, deps.Logger)

	barberHandler := handler.NewBarberHandler(barberService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	imageSearchHandler := handler.NewImageSearchHandler(imageSearchService, deps.Uploads, deps.Logger)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis)

	// --- Application routes ---
	e.GET("/test", barberHandler.Test)
	e.GET("/get_barber", barberHandler.Get)
	e.POST("/create_session", sessionHandler.Create)
	e.GET("/get_user_sessions", sessionHandler.GetUserSessions)
	e.GET("/get_barber_sessions", sessionHandler.GetBarberSessions)
	e.POST("/image_search", imageSearchHandler.Search)

	// --- Operational routes ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

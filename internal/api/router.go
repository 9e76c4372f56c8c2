package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/openplate/foodshare-api/docs"
	"github.com/openplate/foodshare-api/internal/api/handler"
	"github.com/openplate/foodshare-api/internal/api/middleware"
	"github.com/openplate/foodshare-api/internal/core/service"
	"github.com/openplate/foodshare-api/internal/infrastructure/config"
	mongodb "github.com/openplate/foodshare-api/internal/infrastructure/db/mongo"
	redisdb "github.com/openplate/foodshare-api/internal/infrastructure/db/redis"
	"github.com/openplate/foodshare-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every dependency is constructed here and injected; nothing is ambient.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Credentialed CORS: the session cookie only travels cross-origin when
	// the browser sees an explicit origin allowlist, not a wildcard.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("foodshare"))

	// --- Dependencies ---
	listingRepo := mongodb.NewListingRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	featuredCache := redisdb.NewFeaturedCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	listingService := service.NewListingService(listingRepo, featuredCache, log)
	requestService := service.NewRequestService(listingRepo, requestRepo, featuredCache, log)

	authHandler := handler.NewAuthHandler(tokenService, cfg.IsProduction())
	foodHandler := handler.NewFoodHandler(listingService)
	requestHandler := handler.NewRequestHandler(requestService)
	guard := middleware.Auth(tokenService)

	// --- Routes ---
	e.GET("/", banner)

	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/logout", authHandler.Logout)

	e.GET("/foods", foodHandler.List)
	e.POST("/foods", foodHandler.Create)
	e.GET("/foods/:id", foodHandler.Get)
	e.PUT("/foods/:id", foodHandler.Update)
	e.DELETE("/foods/:id", foodHandler.Delete)
	e.GET("/featured-foods", foodHandler.Featured)
	e.GET("/foods-email/:email", foodHandler.ListByOwner, guard)

	e.POST("/foods-request", requestHandler.File)
	e.GET("/request-email/:email", requestHandler.ListByRequester, guard)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

func banner(c echo.Context) error {
	return c.String(http.StatusOK, "food sharing server is running")
}

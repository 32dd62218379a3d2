package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ypamc/restaurant-backend/internal/api/handler"
	"github.com/ypamc/restaurant-backend/internal/api/middleware"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
	"github.com/ypamc/restaurant-backend/internal/core/service"
	mongodb "github.com/ypamc/restaurant-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/ypamc/restaurant-backend/internal/infrastructure/db/redis"
	"github.com/ypamc/restaurant-backend/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Manager, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("restaurant"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	guard := redisdb.NewSubmissionGuard(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	bookingService := service.NewBookingService(bookingRepo, guard, notifier, log)
	contactService := service.NewContactService(contactRepo, notifier, log)
	reviewService := service.NewReviewService(reviewRepo, notifier, log)

	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	contactHandler := handler.NewContactHandler(contactService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	overviewHandler := handler.NewOverviewHandler(bookingRepo, contactRepo, reviewRepo)

	authenticated := middleware.Auth(tokens)

	// --- Root ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the restaurant backend"})
	})

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify", authHandler.Verify, authenticated)

	// --- Public submission routes ---
	e.POST("/bookings", bookingHandler.Create)
	e.POST("/contact", contactHandler.Create)
	e.POST("/reviews", reviewHandler.Create)

	// --- Role-gated admin views. Bookings carry revenue (finance);
	// contact messages and reviews are correspondence records. ---
	e.GET("/bookings", bookingHandler.List, authenticated, middleware.RequireFinanceAdmin())
	e.GET("/contact", contactHandler.List, authenticated, middleware.RequireRecordsAdmin())
	e.GET("/reviews", reviewHandler.List, authenticated, middleware.RequireRecordsAdmin())
	e.GET("/admin/overview", overviewHandler.Overview, authenticated, middleware.RequireAnyAdmin())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

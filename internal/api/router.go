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

	_ "github.com/skillx/skillx-api/docs"
	"github.com/skillx/skillx-api/internal/api/handler"
	"github.com/skillx/skillx-api/internal/api/middleware"
	"github.com/skillx/skillx-api/internal/core/service"
	"github.com/skillx/skillx-api/internal/infrastructure/config"
	mongodb "github.com/skillx/skillx-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skillx/skillx-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("skillx"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	walletRepo := mongodb.NewWalletRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	listingRepo := mongodb.NewListingRepository(db)
	statsRepo := mongodb.NewStatsRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, time.Duration(cfg.Auth.LoginWindowMinutes)*time.Minute)
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	walletService := service.NewWalletService(walletRepo, log)
	messageService := service.NewMessageService(messageRepo, log)
	sessionService := service.NewSessionService(sessionRepo, log)
	marketService := service.NewMarketService(listingRepo, log)
	adminService := service.NewAdminService(statsRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	walletHandler := handler.NewWalletHandler(walletService)
	messageHandler := handler.NewMessageHandler(messageService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	marketHandler := handler.NewMarketHandler(marketService)
	adminHandler := handler.NewAdminHandler(adminService)

	authGate := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC("admin")

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/market", marketHandler.Browse)

	// --- Protected routes ---
	e.GET("/api/me", authHandler.Me, authGate)
	e.GET("/api/wallet", walletHandler.Statement, authGate)
	e.GET("/api/messages/:otherId", messageHandler.Conversation, authGate)
	e.POST("/api/messages", messageHandler.Send, authGate)
	e.GET("/api/sessions", sessionHandler.List, authGate)
	e.POST("/api/sessions", sessionHandler.Book, authGate)
	e.POST("/api/market", marketHandler.Publish, authGate)
	e.GET("/api/admin/overview", adminHandler.Overview, authGate, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

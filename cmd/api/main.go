package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hosteldesk/hosteldesk/internal/adapter/handler"
	"github.com/hosteldesk/hosteldesk/internal/adapter/repository"
	"github.com/hosteldesk/hosteldesk/internal/infrastructure/cache"
	"github.com/hosteldesk/hosteldesk/internal/infrastructure/database"
	httpmw "github.com/hosteldesk/hosteldesk/internal/infrastructure/http/middleware"
	"github.com/hosteldesk/hosteldesk/internal/usecase/announcement"
	"github.com/hosteldesk/hosteldesk/internal/usecase/auth"
	"github.com/hosteldesk/hosteldesk/internal/usecase/complaint"
	"github.com/hosteldesk/hosteldesk/internal/usecase/latepass"
	"github.com/hosteldesk/hosteldesk/internal/usecase/receipt"
	"github.com/hosteldesk/hosteldesk/internal/usecase/roomrequest"
	"github.com/hosteldesk/hosteldesk/pkg/config"
	"github.com/hosteldesk/hosteldesk/pkg/jwt"
	pkgvalidator "github.com/hosteldesk/hosteldesk/pkg/validator"
)

// @title           HostelDesk API
// @version         1.0
// @description     API for hostel management: room requests, complaints, announcements, payment receipts and late passes

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if cfg.Server.Environment != "production" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Database
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply SQL migrations only when explicitly enabled in config.
	// Production deployments manage schema via the migrate script.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Manage schema with the migrate script instead.")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	// Session store: Redis in normal deployments, in-memory when disabled
	var sessions cache.Store
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		logger.Warn("redis disabled, using in-memory session store")
		sessions = cache.NewMemoryStore()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRoomRequestRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	latePassRepo := repository.NewLatePassRepository(db)

	// JWT manager
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Services
	authService := auth.NewAuthService(userRepo, sessions, jwtManager)
	requestService := roomrequest.NewRoomRequestService(requestRepo)
	complaintService := complaint.NewComplaintService(complaintRepo)
	announcementService := announcement.NewAnnouncementService(announcementRepo)
	receiptService := receipt.NewReceiptService(receiptRepo)
	latePassService := latepass.NewLatePassService(latePassRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	requestHandler := handler.NewRoomRequestHandler(requestService, logger)
	complaintHandler := handler.NewComplaintHandler(complaintService, logger)
	announcementHandler := handler.NewAnnouncementHandler(announcementService, logger)
	receiptHandler := handler.NewReceiptHandler(receiptService, logger)
	latePassHandler := handler.NewLatePassHandler(latePassService, logger)

	// Routes
	authMW := httpmw.EchoAuth(authService)
	router := handler.NewRouter(
		cfg,
		authHandler,
		requestHandler,
		complaintHandler,
		announcementHandler,
		receiptHandler,
		latePassHandler,
		authMW,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server stopped")
}

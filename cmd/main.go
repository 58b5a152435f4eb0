package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/sewinggem/template-service/docs"
	"github.com/sewinggem/template-service/internal/auth"
	"github.com/sewinggem/template-service/internal/config"
	"github.com/sewinggem/template-service/internal/handlers"
	"github.com/sewinggem/template-service/internal/logger"
	"github.com/sewinggem/template-service/internal/middleware"
	"github.com/sewinggem/template-service/internal/repositories"
	"github.com/sewinggem/template-service/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title SewingGem Template Service API
// @version 1.0
// @description API for managing and rendering reusable email templates with named placeholders

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey SessionCookie
// @in header
// @name auth-token
// @description Session token issued at login, normally carried by the auth-token cookie.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting SewingGem Template Service")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize session token manager
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.SessionTokenExpiry)

	// Initialize repositories
	templateRepo := repositories.NewTemplateRepository(db)
	adminUserRepo := repositories.NewAdminUserRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)
	txManager := repositories.NewTxManager(db)

	// Seed the admin account and sample template
	seeder := services.NewSeeder(adminUserRepo, templateRepo, logger.Logger)
	if err := seeder.Run(context.Background(), cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		logger.Logger.Fatal("Failed to seed database", zap.Error(err))
	}

	// Initialize services
	templateService := services.NewTemplateService(templateRepo, auditLogRepo, txManager, logger.Logger)
	authService := services.NewAuthService(adminUserRepo, tokens, logger.Logger)
	auditLogService := services.NewAuditLogService(auditLogRepo)

	// Initialize handlers
	cookieMaxAge := int(cfg.JWT.SessionTokenExpiry.Seconds())
	authHandler := handlers.NewAuthHandler(authService, logger.Logger, cookieMaxAge, cfg.IsProduction())
	adminHandler := handlers.NewAdminHandler(templateService, auditLogService, logger.Logger)
	publicHandler := handlers.NewPublicHandler(templateService, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.Auth(tokens)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger.Logger))
	r.Use(middleware.Recovery(logger.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.RequestSizeLimit(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		// Register auth routes
		authHandler.RegisterRoutes(r, authMiddleware)
		// Register public rendering route
		publicHandler.RegisterRoutes(r)
		// Register admin routes behind the session gate
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			adminHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "template_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

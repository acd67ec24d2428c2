package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	"github.com/citruspartners/citrus_ledger_app/internal/core/services"
	"github.com/citruspartners/citrus_ledger_app/internal/handlers"
	"github.com/citruspartners/citrus_ledger_app/internal/middleware"
	"github.com/citruspartners/citrus_ledger_app/internal/platform/config"
	"github.com/citruspartners/citrus_ledger_app/internal/repositories/database/pgsql"
	"github.com/citruspartners/citrus_ledger_app/internal/utils"
	"github.com/citruspartners/citrus_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Citrus Ledger API
// @version 1.0
// @description Backend for the citrus export partnership: financial ledger, order lifecycle and reporting.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services, then register all routes
	repos := pgsql.NewRepositoryProvider(dbPool)
	if err := seedPartners(context.Background(), repos.PartnerRepo, cfg.SeedPartners, logger); err != nil {
		logger.Error("Failed to seed partners", slog.String("error", err.Error()))
		os.Exit(1)
	}
	serviceContainer := services.NewServiceContainer(repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seedPartners creates the initial partner accounts from the configured
// "name:email:password" list. It only runs against an empty partners table so
// restarts never duplicate or overwrite accounts.
func seedPartners(ctx context.Context, partnerRepo portsrepo.PartnerRepositoryFacade, seedSpec string, logger *slog.Logger) error {
	if seedSpec == "" {
		return nil
	}

	existing, err := partnerRepo.ListPartners(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing partners: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, entry := range strings.Split(seedSpec, ",") {
		fields := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(fields) != 3 {
			return fmt.Errorf("malformed SEED_PARTNERS entry %q, want name:email:password", entry)
		}

		hash, err := utils.HashPassword(fields[2])
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", fields[1], err)
		}

		partner := domain.Partner{
			PartnerID:    uuid.NewString(),
			Name:         fields[0],
			Email:        fields[1],
			PasswordHash: hash,
			AuditFields: domain.AuditFields{
				CreatedAt: time.Now(),
				CreatedBy: "seed",
			},
		}
		if err := partnerRepo.SavePartner(ctx, partner); err != nil {
			return fmt.Errorf("failed to seed partner %s: %w", partner.Email, err)
		}
		logger.Info("Seeded partner", slog.String("email", partner.Email))
	}
	return nil
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

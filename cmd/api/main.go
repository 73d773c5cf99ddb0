package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/SanchitKumbhar/Bynry-Task/internal/application/alerts"
	"github.com/SanchitKumbhar/Bynry-Task/internal/application/usecase"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/alerting"
	"github.com/SanchitKumbhar/Bynry-Task/internal/infrastructure/postgres"
	httpRouter "github.com/SanchitKumbhar/Bynry-Task/internal/interfaces/http"
	"github.com/SanchitKumbhar/Bynry-Task/pkg/config"
	"github.com/SanchitKumbhar/Bynry-Task/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("lookback_days", cfg.Alerts.LookbackDays).
		Int("avg_window_days", cfg.Alerts.AvgWindowDays).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)

	policy := alerting.NewThresholdPolicy(cfg.Alerts.ThresholdsByType)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	alertUC := alerts.NewAlertUseCase(
		companyRepo, warehouseRepo, inventoryRepo,
		productRepo, saleRepo, supplierRepo,
		policy, cfg.Alerts.LookbackDays, cfg.Alerts.AvgWindowDays,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Alerts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		AlertUC:   alertUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

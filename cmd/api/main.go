package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/waterbiz/waterbiz-api/internal/application/usecase"
	"github.com/waterbiz/waterbiz-api/internal/infrastructure/postgres"
	httpRouter "github.com/waterbiz/waterbiz-api/internal/interfaces/http"
	"github.com/waterbiz/waterbiz-api/pkg/config"
	"github.com/waterbiz/waterbiz-api/pkg/logger"
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
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerProductRepo := postgres.NewCustomerProductRepository(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	customerProductUC := usecase.NewCustomerProductUseCase(customerProductRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// The UI is served from a separate origin; no credentials involved.
	app.Use(cors.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "WaterBiz API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("WaterBiz API running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:        customerUC,
		InventoryUC:       inventoryUC,
		EmployeeUC:        employeeUC,
		CustomerProductUC: customerProductUC,
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

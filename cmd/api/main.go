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

	"github.com/jhoicas/almacen-qr-api/internal/application/analytics"
	"github.com/jhoicas/almacen-qr-api/internal/application/auth"
	"github.com/jhoicas/almacen-qr-api/internal/application/inventory"
	"github.com/jhoicas/almacen-qr-api/internal/application/usecase"
	"github.com/jhoicas/almacen-qr-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/almacen-qr-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-qr-api/pkg/config"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := sheets.NewClient(ctx, cfg.Sheets, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Google Sheets")
	}

	productRepo := sheets.NewProductRepository(store, log)
	movementRepo := sheets.NewMovementRepository(store, log)
	departmentRepo := sheets.NewDepartmentRepository(store)
	unitRepo := sheets.NewUnitRepository(store)
	userRepo := sheets.NewUserRepository(store)

	inventoryUC := inventory.NewUseCase(productRepo, movementRepo, log)
	trendUC := analytics.NewTrendUseCase(movementRepo, productRepo, log)
	summaryUC := analytics.NewSummaryUseCase(productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén QR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InventoryUC:  inventoryUC,
		TrendUC:      trendUC,
		SummaryUC:    summaryUC,
		ProductUC:    productUC,
		DepartmentUC: departmentUC,
		UnitUC:       unitUC,
		UserUC:       userUC,
		MovementRepo: movementRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

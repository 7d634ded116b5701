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

	"github.com/jhoicas/cafe-stock-api/internal/application/auth"
	"github.com/jhoicas/cafe-stock-api/internal/application/report"
	"github.com/jhoicas/cafe-stock-api/internal/application/stock"
	"github.com/jhoicas/cafe-stock-api/internal/application/usecase"
	"github.com/jhoicas/cafe-stock-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/cafe-stock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cafe-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cafe-stock-api/internal/interfaces/http"
	"github.com/jhoicas/cafe-stock-api/pkg/config"
	"github.com/jhoicas/cafe-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Notificaciones de stock: correo si hay SMTP configurado, si no solo log.
	var notifier stock.Notifier
	if cfg.SMTP.Host != "" {
		notifier = notify.NewEmailNotifier(cfg.SMTP)
	} else {
		notifier = notify.NewLogNotifier(log.Component("notify"))
	}

	stockUC := stock.NewStockUseCase(txRunner, productRepo, movementRepo, categoryRepo, supplierRepo, notifier)
	auditor := stock.NewBalanceAuditor(reportRepo, productRepo, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewReportUseCase(reportRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Cafe Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		SupplierUC: supplierUC,
		StockUC:    stockUC,
		Auditor:    auditor,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
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

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
	"github.com/tu-usuario/stockbook/internal/application/billing"
	"github.com/tu-usuario/stockbook/internal/application/inventory"
	"github.com/tu-usuario/stockbook/internal/application/reporting"
	infrapdf "github.com/tu-usuario/stockbook/internal/infrastructure/pdf"
	"github.com/tu-usuario/stockbook/internal/infrastructure/postgres"
	"github.com/tu-usuario/stockbook/internal/infrastructure/spreadsheet"
	httpRouter "github.com/tu-usuario/stockbook/internal/interfaces/http"
	"github.com/tu-usuario/stockbook/pkg/config"
	"github.com/tu-usuario/stockbook/pkg/logger"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	purchaseUC := inventory.NewPurchaseUseCase(txRunner, productRepo)
	saleUC := inventory.NewSaleUseCase(txRunner)
	bulkImportUC := inventory.NewBulkImportUseCase(purchaseUC)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, reportRepo)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, productRepo, pdfGenerator)

	dashboardUC := reporting.NewDashboardUseCase(reportRepo)
	statisticsUC := reporting.NewStatisticsUseCase(reportRepo)
	ledgerUC := reporting.NewLedgerQueryUseCase(transactionRepo)

	// Barrido correctivo de estados de stock en segundo plano
	sweep := inventory.NewStatusSweep(productRepo, cfg.Stock.SweepInterval, log)
	go sweep.Run(ctx)

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
		Title:    "Stockbook API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PurchaseUC:   purchaseUC,
		SaleUC:       saleUC,
		BulkImportUC: bulkImportUC,
		ReadXLSX:     spreadsheet.ReadXLSX,
		InvoiceUC:    invoiceUC,
		PDFUC:        pdfUC,
		DashboardUC:  dashboardUC,
		StatisticsUC: statisticsUC,
		LedgerUC:     ledgerUC,
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

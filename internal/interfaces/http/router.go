package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockbook/internal/application/billing"
	"github.com/tu-usuario/stockbook/internal/application/inventory"
	"github.com/tu-usuario/stockbook/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PurchaseUC   *inventory.PurchaseUseCase
	SaleUC       *inventory.SaleUseCase
	BulkImportUC *inventory.BulkImportUseCase
	ReadXLSX     XLSXReader
	InvoiceUC    *billing.InvoiceUseCase
	PDFUC        *billing.PDFUseCase
	DashboardUC  *reporting.DashboardUseCase
	StatisticsUC *reporting.StatisticsUseCase
	LedgerUC     *reporting.LedgerQueryUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todas las rutas del motor requieren
// Bearer Token: el UserID del token es el tenant de cada operación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Products y movimientos de stock
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.PurchaseUC, deps.SaleUC, deps.BulkImportUC, deps.ReadXLSX)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/restock", productHandler.Restock)
	products.Post("/sell", productHandler.Sell)
	products.Post("/import", productHandler.Import)
	products.Get("/:productId/stock", productHandler.Stock)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/stats", invoiceHandler.Stats)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id/pay", invoiceHandler.MarkPaid)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Ledger crudo
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Get("/", transactionHandler.List)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Home)
	dashboard.Get("/graph", dashboardHandler.Graph)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/top-selling", dashboardHandler.TopSelling)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/expiring", dashboardHandler.Expiring)
	dashboard.Get("/top-stats", dashboardHandler.TopStats)

	// Statistics
	statistics := api.Group("/statistics")
	statisticsHandler := NewStatisticsHandler(deps.StatisticsUC)
	statistics.Get("/summary", statisticsHandler.Summary)
	statistics.Get("/graph", statisticsHandler.Graph)
	statistics.Get("/top-products", statisticsHandler.TopProducts)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/auth"
	"github.com/jhoicas/cafe-stock-api/internal/application/report"
	"github.com/jhoicas/cafe-stock-api/internal/application/stock"
	"github.com/jhoicas/cafe-stock-api/internal/application/usecase"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	StockUC    *stock.StockUseCase
	Auditor    *stock.BalanceAuditor
	ReportUC   *report.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Delete)

	// Stock: movimientos, historial y reposición (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.Auditor)
	reportHandler := NewReportHandler(deps.ReportUC)
	stockGroup.Post("/add", stockHandler.AddStock)
	stockGroup.Post("/remove", stockHandler.RemoveStock)
	stockGroup.Post("/adjust", stockHandler.AdjustStock)
	stockGroup.Get("/history/:productId", stockHandler.History)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	stockGroup.Get("/movements/:id", stockHandler.GetMovement)
	stockGroup.Get("/summary", reportHandler.Summary)
	stockGroup.Get("/audit", RequireRole(entity.RoleAdmin), stockHandler.AuditBalances)
	stockGroup.Get("/audit/:productId", RequireRole(entity.RoleAdmin), stockHandler.AuditProduct)
	stockGroup.Post("/reorder-all", RequireRole(entity.RoleAdmin), stockHandler.ReorderAll)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory/pdf", reportHandler.InventoryPDF)
}

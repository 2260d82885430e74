package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-qr-api/internal/application/analytics"
	"github.com/jhoicas/almacen-qr-api/internal/application/auth"
	"github.com/jhoicas/almacen-qr-api/internal/application/inventory"
	"github.com/jhoicas/almacen-qr-api/internal/application/usecase"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	InventoryUC  *inventory.UseCase
	TrendUC      *analytics.TrendUseCase
	SummaryUC    *analytics.SummaryUseCase
	ProductUC    *usecase.ProductUseCase
	DepartmentUC *usecase.DepartmentUseCase
	UnitUC       *usecase.UnitUseCase
	UserUC       *usecase.UserUseCase
	MovementRepo repository.MovementRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Transactions (protegido)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.InventoryUC, deps.MovementRepo)
	transactions.Post("/", transactionHandler.Register)
	transactions.Get("/", transactionHandler.List)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.TrendUC, deps.SummaryUC)
	analyticsGroup.Get("/trend", analyticsHandler.GetTrend)
	analyticsGroup.Get("/summary", analyticsHandler.GetSummary)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)

	// Departments (protegido)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Get("/", departmentHandler.List)
	departments.Post("/", departmentHandler.Create)
	departments.Put("/:id", departmentHandler.Update)
	departments.Delete("/:id", departmentHandler.Delete)

	// Units (protegido)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Get("/", unitHandler.List)
	units.Post("/", unitHandler.Create)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:username", userHandler.Update)
	users.Delete("/:username", userHandler.Delete)
}

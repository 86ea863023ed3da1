package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waterbiz/waterbiz-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CustomerUC        *usecase.CustomerUseCase
	InventoryUC       *usecase.InventoryUseCase
	EmployeeUC        *usecase.EmployeeUseCase
	CustomerProductUC *usecase.CustomerProductUseCase
}

// Router registers the API routes. Static segments (export, mark-serviced)
// are registered before the :id routes so they are matched first.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/export", customerHandler.Export)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/export", inventoryHandler.Export)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/export", employeeHandler.Export)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	customerProducts := api.Group("/customer-products")
	customerProductHandler := NewCustomerProductHandler(deps.CustomerProductUC)
	customerProducts.Get("/export", customerProductHandler.Export)
	customerProducts.Post("/mark-serviced/:id", customerProductHandler.MarkServiced)
	customerProducts.Get("/", customerProductHandler.List)
	customerProducts.Get("/:customer_id", customerProductHandler.ListByCustomer)
	customerProducts.Post("/", customerProductHandler.Create)
	customerProducts.Put("/:id", customerProductHandler.Update)
	customerProducts.Delete("/:id", customerProductHandler.Delete)
}

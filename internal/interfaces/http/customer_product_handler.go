package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/application/export"
	"github.com/waterbiz/waterbiz-api/internal/application/listing"
	"github.com/waterbiz/waterbiz-api/internal/application/usecase"
)

// CustomerProductHandler handles ownership-record HTTP requests.
type CustomerProductHandler struct {
	uc *usecase.CustomerProductUseCase
}

// NewCustomerProductHandler builds the handler.
func NewCustomerProductHandler(uc *usecase.CustomerProductUseCase) *CustomerProductHandler {
	return &CustomerProductHandler{uc: uc}
}

// List GET /api/customer-products
func (h *CustomerProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to fetch customer products")
	}
	return c.JSON(list)
}

// ListByCustomer GET /api/customer-products/:customer_id
func (h *CustomerProductHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.ListByCustomer(c.Params("customer_id"))
	if err != nil {
		return fail(c, err, "", "Failed to fetch products")
	}
	return c.JSON(list)
}

// Create POST /api/customer-products
func (h *CustomerProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Create(in); err != nil {
		return fail(c, err, "", "Failed to add product")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Customer product added successfully"})
}

// Update PUT /api/customer-products/:id
func (h *CustomerProductHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerProductUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		return fail(c, err, "Customer product not found", "Failed to update product")
	}
	return c.JSON(dto.MessageResponse{Message: "Customer product updated successfully"})
}

// Delete DELETE /api/customer-products/:id
func (h *CustomerProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "Customer product not found", "Failed to delete product")
	}
	return c.JSON(dto.MessageResponse{Message: "Customer product deleted successfully"})
}

// MarkServiced POST /api/customer-products/mark-serviced/:id
func (h *CustomerProductHandler) MarkServiced(c *fiber.Ctx) error {
	if err := h.uc.MarkServiced(c.Params("id")); err != nil {
		return fail(c, err, "Customer product not found", "Failed to update service date")
	}
	return c.JSON(dto.MessageResponse{Message: "Product marked as serviced"})
}

// Export GET /api/customer-products/export?q=
func (h *CustomerProductHandler) Export(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to fetch customer products")
	}
	filtered := listing.Filter(list, c.Query("q"), (*dto.CustomerProductResponse).SearchFields)
	f, err := export.CustomerProducts(filtered)
	if err != nil {
		return fail(c, err, "", "Failed to build export")
	}
	return sendWorkbook(c, f, "customer_products.xlsx")
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/application/export"
	"github.com/waterbiz/waterbiz-api/internal/application/listing"
	"github.com/waterbiz/waterbiz-api/internal/application/usecase"
)

// CustomerHandler handles customer HTTP requests.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to get customers")
	}
	return c.JSON(list)
}

// Get GET /api/customers/:id
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	customer, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err, "Customer not found", "Failed to get customer")
	}
	return c.JSON(customer)
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "", "Failed to create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "Customer not found", "Failed to update customer")
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return fail(c, err, "Customer not found", "Failed to delete customer")
	}
	return c.JSON(dto.CustomerDeleteResponse{Message: "Customer deleted", Deleted: *deleted})
}

// Export GET /api/customers/export?q=
func (h *CustomerHandler) Export(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to get customers")
	}
	filtered := listing.Filter(list, c.Query("q"), (*dto.CustomerResponse).SearchFields)
	f, err := export.Customers(filtered)
	if err != nil {
		return fail(c, err, "", "Failed to build export")
	}
	return sendWorkbook(c, f, "filtered_customers.xlsx")
}

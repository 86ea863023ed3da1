package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/application/export"
	"github.com/waterbiz/waterbiz-api/internal/application/listing"
	"github.com/waterbiz/waterbiz-api/internal/application/usecase"
)

// EmployeeHandler handles employee HTTP requests.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler builds the handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List GET /api/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to get employees")
	}
	return c.JSON(list)
}

// Create POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	employee, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "", "Failed to create employee")
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// Update PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	employee, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "Employee not found", "Failed to update employee")
	}
	return c.JSON(employee)
}

// Delete DELETE /api/employees/:id — 204 with an empty body on success.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "Employee not found", "Failed to delete employee")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export GET /api/employees/export?q=
func (h *EmployeeHandler) Export(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to get employees")
	}
	filtered := listing.Filter(list, c.Query("q"), (*dto.EmployeeResponse).SearchFields)
	f, err := export.Employees(filtered)
	if err != nil {
		return fail(c, err, "", "Failed to build export")
	}
	return sendWorkbook(c, f, "filtered_employees.xlsx")
}

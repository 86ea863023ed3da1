package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/application/export"
	"github.com/waterbiz/waterbiz-api/internal/application/listing"
	"github.com/waterbiz/waterbiz-api/internal/application/usecase"
)

// InventoryHandler handles inventory HTTP requests.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to get inventory")
	}
	return c.JSON(list)
}

// Create POST /api/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Create(in); err != nil {
		return fail(c, err, "", "Failed to add inventory item")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Inventory item added successfully"})
}

// Update PUT /api/inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		return fail(c, err, "Inventory item not found", "Failed to update inventory item")
	}
	return c.JSON(dto.MessageResponse{Message: "Inventory item updated successfully"})
}

// Delete DELETE /api/inventory/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "Inventory item not found", "Failed to delete inventory item")
	}
	return c.JSON(dto.MessageResponse{Message: "Inventory item deleted successfully"})
}

// Export GET /api/inventory/export?q=
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return fail(c, err, "", "Failed to get inventory")
	}
	filtered := listing.Filter(list, c.Query("q"), (*dto.InventoryItemResponse).SearchFields)
	f, err := export.Inventory(filtered)
	if err != nil {
		return fail(c, err, "", "Failed to build export")
	}
	return sendWorkbook(c, f, "filtered_inventory.xlsx")
}

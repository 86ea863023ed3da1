package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/application/export"
	"github.com/waterbiz/waterbiz-api/internal/domain"
)

// fail maps a use-case error to the HTTP contract: not-found -> 404 with a
// short message, invalid input -> 400 with the validation detail, anything
// else -> 500 with a generic message while the cause goes to the log only.
func fail(c *fiber.Ctx, err error, notFoundMsg, internalMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(internalMsg)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: internalMsg})
	}
}

// badBody rejects an undecodable request body.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
}

// sendWorkbook streams an XLSX workbook as a download.
func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("write workbook")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to build export"})
	}
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/application/invoicing"
)

// SettingsHandler handles the organization settings record (protected).
type SettingsHandler struct {
	uc *invoicing.UseCase
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(uc *invoicing.UseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get returns the current settings record.
// GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update replaces the settings record wholesale.
// PUT /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.OrganizationSettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "organization name is required"})
	}
	out, err := h.uc.UpdateSettings(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/application/invoicing"
)

// DashboardHandler serves the landing-view summary (protected).
type DashboardHandler struct {
	uc *invoicing.UseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *invoicing.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary returns invoice count, total billed and recent invoices.
// GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

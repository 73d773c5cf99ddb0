package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SanchitKumbhar/Bynry-Task/internal/application/alerts"
	"github.com/SanchitKumbhar/Bynry-Task/internal/application/dto"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain"
)

// AlertHandler serves low-stock alert queries.
type AlertHandler struct {
	uc *alerts.AlertUseCase
}

// NewAlertHandler builds the handler.
func NewAlertHandler(uc *alerts.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// LowStock godoc
// @Summary      Low-stock alerts for a company
// @Tags         alerts
// @Produce      json
// @Param        id   path  string  true  "Company ID"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "company id is required"})
	}
	out, err := h.uc.ComputeAlerts(c.UserContext(), companyID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SanchitKumbhar/Bynry-Task/internal/application/alerts"
	"github.com/SanchitKumbhar/Bynry-Task/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	AlertUC   *alerts.AlertUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	alertHandler := NewAlertHandler(deps.AlertUC)
	companies.Get("/:id/alerts/low-stock", alertHandler.LowStock)
}

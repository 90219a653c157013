package handlers

import (
	"errors"
	"log"

	"jewelstack/internal/models"
	"jewelstack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles HTTP requests for the store dashboard.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Get("/", h.HandleSummary)
	dashboardRoutes.Put("/gold-rate", h.HandleSetGoldRate)
}

// HandleSummary returns the current store metrics.
func (h *DashboardHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		log.Printf("Error computing dashboard summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute dashboard summary",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleSetGoldRate manually overrides the displayed gold rate per gram.
func (h *DashboardHandler) HandleSetGoldRate(c *fiber.Ctx) error {
	var req struct {
		RatePerGram int64 `json:"rate_per_gram"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing gold rate request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SetGoldRate(req.RatePerGram); err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Gold rate must be positive",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not set gold rate",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Gold rate updated",
	})
}

package handlers

import (
	"errors"
	"log"

	"jewelstack/internal/services"
	"jewelstack/pkg/gemini"

	"github.com/gofiber/fiber/v2"
)

// InsightHandler handles HTTP requests for AI-generated insights. Failures
// of the AI collaborator are degraded to fixed fallback texts in a 200
// response rather than surfaced as errors; the typed cause is logged.
type InsightHandler struct {
	service *services.InsightService
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(service *services.InsightService) *InsightHandler {
	return &InsightHandler{
		service: service,
	}
}

// RegisterRoutes registers the insight routes with the Fiber app.
func (h *InsightHandler) RegisterRoutes(router fiber.Router) {
	insightRoutes := router.Group("/insights")
	insightRoutes.Post("/price-prediction", h.HandlePredictPrice)
	insightRoutes.Post("/recommendation", h.HandleRecommend)
	insightRoutes.Get("/stocking-report", h.HandleStockingReport)
}

// fallbackText maps an insight failure to the text shown to the user.
func fallbackText(err error, couldNot string) string {
	if errors.Is(err, gemini.ErrNoAPIKey) {
		return "API Key not configured."
	}
	return couldNot
}

// HandlePredictPrice predicts the price movement for a diamond.
func (h *InsightHandler) HandlePredictPrice(c *fiber.Ctx) error {
	var req struct {
		Carat float64 `json:"carat"`
		Cut   string  `json:"cut"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing prediction request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	prediction, err := h.service.PredictPrice(c.Context(), req.Carat, req.Cut)
	if err != nil {
		log.Printf("Price prediction failed: %v", err)
		return c.JSON(services.PricePrediction{
			PredictionText: "Error",
			Explanation:    fallbackText(err, "Could not fetch prediction."),
		})
	}
	return c.JSON(prediction)
}

// HandleRecommend returns a recommendation for an ornament and purity.
func (h *InsightHandler) HandleRecommend(c *fiber.Ctx) error {
	var req struct {
		Ornament string `json:"ornament"`
		Purity   string `json:"purity"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing recommendation request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	recommendation, err := h.service.Recommend(c.Context(), req.Ornament, req.Purity)
	if err != nil {
		log.Printf("Recommendation failed: %v", err)
		recommendation = fallbackText(err, "Could not fetch recommendation.")
	}
	return c.JSON(fiber.Map{
		"recommendation": recommendation,
	})
}

// HandleStockingReport generates a stocking report from market trends and
// current inventory.
func (h *InsightHandler) HandleStockingReport(c *fiber.Ctx) error {
	report, err := h.service.StockingReport(c.Context())
	if err != nil {
		log.Printf("Stocking report failed: %v", err)
		report = fallbackText(err, "Could not generate report.")
	}
	return c.JSON(fiber.Map{
		"report": report,
	})
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jewelstack/internal/repositories"
	"jewelstack/pkg/gemini"
)

// PricePrediction is the structured result of a diamond price prediction.
type PricePrediction struct {
	PredictionText string `json:"predictionText"` // e.g. "+18%"
	Explanation    string `json:"explanation"`
}

var predictionSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"predictionText": {"type": "STRING"},
		"explanation": {"type": "STRING"}
	},
	"required": ["predictionText", "explanation"]
}`)

// InsightService produces AI-generated insights: price predictions, gold
// recommendations and stocking reports. Failures carry the gemini package's
// typed errors; the handler decides how to degrade them.
type InsightService struct {
	client      *gemini.Client
	productRepo repositories.ProductRepository
}

// NewInsightService creates a new InsightService.
func NewInsightService(client *gemini.Client, productRepo repositories.ProductRepository) *InsightService {
	return &InsightService{
		client:      client,
		productRepo: productRepo,
	}
}

// PredictPrice asks for a percentage price prediction for a diamond with
// the given carat weight and cut quality.
func (s *InsightService) PredictPrice(ctx context.Context, carat float64, cut string) (*PricePrediction, error) {
	prompt := fmt.Sprintf(`As a jewelry expert, predict the percentage price increase for a diamond with the following characteristics. Provide a short, one-sentence explanation.
- Carat Weight: %.2f
- Cut Quality: %s

Return the result as a JSON object with two keys: "predictionText" (e.g., "+18%%") and "explanation".`, carat, cut)

	var prediction PricePrediction
	if err := s.client.GenerateJSON(ctx, prompt, predictionSchema, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

// Recommend returns a purchase recommendation for an ornament type and
// gold purity.
func (s *InsightService) Recommend(ctx context.Context, ornament, purity string) (string, error) {
	prompt := fmt.Sprintf("As a jewelry advisor, give a concise recommendation for a customer interested in a %s %s. Mention its key benefit (e.g., durability, value).", purity, ornament)
	return s.client.GenerateText(ctx, prompt)
}

// StockingReport generates a stocking report grounded in the current
// catalog stock levels.
func (s *InsightService) StockingReport(ctx context.Context) (string, error) {
	var inventory strings.Builder
	products, err := s.productRepo.GetAll()
	if err == nil && len(products) > 0 {
		inventory.WriteString("\nCurrent inventory:\n")
		for _, p := range products {
			fmt.Fprintf(&inventory, "- %s (%s, %s): %d in stock\n", p.Name, p.Category, p.Purity, p.Stock)
		}
	}

	prompt := fmt.Sprintf(`Based on current market trends, generate a smart stocking report for a jewelry store. Provide three actionable bullet points. For example: "- Focus on 22K gold for upcoming festival season due to high demand."%s`, inventory.String())
	return s.client.GenerateText(ctx, prompt)
}

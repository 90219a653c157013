package handlers

import (
	"errors"
	"fmt"
	"log"

	"jewelstack/internal/models"
	"jewelstack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InvoiceHandler handles HTTP requests for invoice generation.
type InvoiceHandler struct {
	service *services.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
	}
}

// RegisterRoutes registers the invoice routes with the Fiber app.
func (h *InvoiceHandler) RegisterRoutes(router fiber.Router) {
	invoiceRoutes := router.Group("/invoices")
	invoiceRoutes.Get("/order/:id", h.HandleInvoiceFromOrder)
	invoiceRoutes.Post("/", h.HandleBuildInvoice)
}

// HandleInvoiceFromOrder builds an invoice from a ledger order.
func (h *InvoiceHandler) HandleInvoiceFromOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	invoice, err := h.service.FromOrder(orderID)
	if err != nil {
		log.Printf("Error building invoice for order %s: %v", orderID, err)
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build invoice",
			"error":   err.Error(),
		})
	}
	return c.JSON(invoice)
}

// BuildInvoiceRequest is the body for an ad-hoc invoice.
type BuildInvoiceRequest struct {
	CustomerName string               `json:"customer_name"`
	Lines        []services.AdHocLine `json:"lines"`
}

// HandleBuildInvoice assembles an ad-hoc invoice from free-form lines.
func (h *InvoiceHandler) HandleBuildInvoice(c *fiber.Ctx) error {
	var req BuildInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing invoice request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	invoice, err := h.service.Build(req.CustomerName, req.Lines)
	if err != nil {
		log.Printf("Error building ad-hoc invoice: %v", err)
		if errors.Is(err, models.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invoice rejected",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build invoice",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

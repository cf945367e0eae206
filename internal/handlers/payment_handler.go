package handlers

import (
	"errors"
	"log"

	"dukaan/internal/models"
	"dukaan/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payment verification.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the verification routes with the Fiber app.
// The webhook route is registered separately in main so the signature
// middleware can guard it.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/verify-payment", h.HandleVerifyPayment)
}

// HandleVerifyPayment checks the signature the client reports after the
// hosted checkout completes.
func (h *PaymentHandler) HandleVerifyPayment(c *fiber.Ctx) error {
	var verifyRequest models.VerifyPaymentRequest
	if err := c.BodyParser(&verifyRequest); err != nil {
		log.Printf("Error parsing verify-payment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(verifyRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.VerificationResult{
			Success: false,
			Msg:     "Missing verification fields",
		})
	}

	result, err := h.service.VerifyPayment(verifyRequest.OrderID, verifyRequest.PaymentID, verifyRequest.Signature)
	if err != nil {
		if errors.Is(err, services.ErrSignatureMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(result)
		}
		log.Printf("Error verifying payment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "verification failed",
		})
	}

	return c.JSON(result)
}

// HandleWebhook dispatches a gateway webhook event. The signature middleware
// has already verified the raw body by the time this runs; the service
// re-checks as part of HandleWebhook, which keeps the handler safe even if
// it is ever mounted without the middleware.
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	signature := c.Get("X-Razorpay-Signature")
	// c.Body() is the raw bytes as received; nothing upstream parses them.
	if err := h.service.HandleWebhook(c.Body(), signature); err != nil {
		if errors.Is(err, services.ErrSignatureMismatch) {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid signature")
		}
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Malformed event payload",
			})
		}
		log.Printf("Error handling webhook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "webhook processing failed",
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}

package middleware

import (
	"log"

	"dukaan/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WebhookSignatureRequired is a Fiber middleware that rejects webhook
// deliveries whose signature header does not match the HMAC of the raw
// request body. Verification must happen over the bytes as received;
// the body is not parsed here.
func WebhookSignatureRequired(paymentService *services.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Razorpay-Signature")
		if signature == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "X-Razorpay-Signature header is required",
			})
		}

		if err := paymentService.VerifyWebhookSignature(c.Body(), signature); err != nil {
			log.Printf("Webhook signature verification failed: %v", err)
			return c.Status(fiber.StatusBadRequest).SendString("Invalid signature")
		}

		return c.Next()
	}
}

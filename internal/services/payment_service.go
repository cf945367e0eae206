package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"dukaan/internal/models"
	"dukaan/internal/repositories"
)

// PaymentService verifies payment confirmations. Both entry points share one
// algorithm: recompute HMAC-SHA256 over the message with the shared secret
// and compare hex digests in constant time.
//
// The webhook is the authoritative confirmation source; the synchronous
// verify call is an optimistic client-side confirmation. Ledger updates from
// either path are upgrade-only, so they can arrive in any order and any
// number of times.
type PaymentService struct {
	orderRepo     repositories.OrderRepository
	keySecret     []byte
	webhookSecret []byte
	mqClient      EventPublisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(orderRepo repositories.OrderRepository, keySecret, webhookSecret string, mqClient EventPublisher) *PaymentService {
	return &PaymentService{
		orderRepo:     orderRepo,
		keySecret:     []byte(keySecret),
		webhookSecret: []byte(webhookSecret),
		mqClient:      mqClient,
	}
}

// signatureMatches recomputes the expected hex HMAC and compares it to the
// supplied one in constant time.
func signatureMatches(secret, message []byte, signature string) bool {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// VerifyPayment checks the client-reported checkout completion. The signed
// message is "<orderID>|<paymentID>" keyed with the gateway key secret. On
// success the ledger entry is advanced to authorized unless the webhook
// already moved it further.
func (s *PaymentService) VerifyPayment(orderID, paymentID, signature string) (*models.VerificationResult, error) {
	message := orderID + "|" + paymentID
	if !signatureMatches(s.keySecret, []byte(message), signature) {
		return &models.VerificationResult{Success: false, Msg: "Invalid signature"}, ErrSignatureMismatch
	}

	s.advanceOrder(orderID, models.OrderStatusAuthorized, paymentID)

	return &models.VerificationResult{Success: true, Msg: "Payment verified"}, nil
}

// VerifyWebhookSignature checks the gateway signature over the raw request
// body. The body must be the exact bytes received; parsing and re-serializing
// it first would change the byte layout and break verification.
func (s *PaymentService) VerifyWebhookSignature(rawBody []byte, signature string) error {
	if !signatureMatches(s.webhookSecret, rawBody, signature) {
		return ErrSignatureMismatch
	}
	return nil
}

// HandleWebhook verifies a webhook delivery and dispatches its event. The
// gateway retries on non-2xx, so handling must be quick and idempotent:
// replays of the same event land on an already-advanced ledger entry and do
// nothing.
func (s *PaymentService) HandleWebhook(rawBody []byte, signature string) error {
	if err := s.VerifyWebhookSignature(rawBody, signature); err != nil {
		return err
	}

	// Only parse after the signature checked out.
	var event models.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return fmt.Errorf("%w: malformed event payload", ErrInvalidRequest)
	}

	payment := event.Payload.Payment.Entity

	var mqEvent map[string]interface{}

	switch event.Event {
	case "payment.authorized":
		s.advanceOrder(payment.OrderID, models.OrderStatusAuthorized, payment.ID)
	case "payment.captured":
		s.advanceOrder(payment.OrderID, models.OrderStatusPaid, payment.ID)
	case "payment.failed":
		s.advanceOrder(payment.OrderID, models.OrderStatusFailed, payment.ID)
	case "refund.processed":
		// Refund payloads carry no payment object; the queue message is
		// built from the refund entity and the ledger entry it resolves to.
		refund := event.Payload.Refund.Entity
		orderID := s.advanceByPaymentID(refund.PaymentID, models.OrderStatusRefunded)
		mqEvent = map[string]interface{}{
			"event":     event.Event,
			"orderID":   orderID,
			"paymentID": refund.PaymentID,
			"amount":    refund.Amount,
		}
	default:
		// Gateways grow event types over time; acknowledge and move on.
		log.Printf("Ignoring unhandled webhook event type %q", event.Event)
		return nil
	}

	if mqEvent == nil {
		mqEvent = map[string]interface{}{
			"event":     event.Event,
			"orderID":   payment.OrderID,
			"paymentID": payment.ID,
			"amount":    payment.Amount,
		}
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishPaymentEvent(mqEvent); err != nil {
			log.Printf("Warning: Failed to publish webhook event %s: %v", event.Event, err)
		}
	}

	return nil
}

// advanceOrder applies an upgrade-only status transition to a ledger entry.
// A missing entry is logged, not an error: this service does not own order
// creation, and the gateway's confirmation remains valid either way.
func (s *PaymentService) advanceOrder(orderID, status, paymentID string) {
	if orderID == "" {
		return
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		log.Printf("Order %s not in ledger, skipping status update: %v", orderID, err)
		return
	}
	if !models.StatusAdvances(order.Status, status) {
		return
	}
	if err := s.orderRepo.UpdateStatus(orderID, status, paymentID); err != nil {
		log.Printf("Failed to update order %s to %s: %v", orderID, status, err)
	}
}

// advanceByPaymentID resolves the ledger entry through its payment id and
// returns the order id it resolved to, or empty. Refund events do not carry
// the order id.
func (s *PaymentService) advanceByPaymentID(paymentID, status string) string {
	if paymentID == "" {
		return ""
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		log.Printf("Failed to scan ledger for payment %s: %v", paymentID, err)
		return ""
	}
	for _, order := range orders {
		if order.PaymentID == paymentID {
			s.advanceOrder(order.ID, status, paymentID)
			return order.ID
		}
	}
	log.Printf("No ledger entry for payment %s, skipping status update", paymentID)
	return ""
}

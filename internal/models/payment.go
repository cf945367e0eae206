package models

// VerifyPaymentRequest is the payload the client submits after the hosted
// checkout completes. Field names follow the gateway's callback verbatim.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// VerificationResult is the outcome of a signature check. Never persisted.
type VerificationResult struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// WebhookEvent is the envelope of a gateway webhook payload. Only the fields
// this service dispatches on are modelled; the rest of the payload is left to
// downstream consumers.
type WebhookEvent struct {
	Event   string `json:"event"` // e.g. payment.captured
	Payload struct {
		Payment struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
		Refund struct {
			Entity RefundEntity `json:"entity"`
		} `json:"refund"`
	} `json:"payload"`
}

// PaymentEntity is the payment object nested in webhook payloads.
type PaymentEntity struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// RefundEntity is the refund object nested in refund.processed payloads.
type RefundEntity struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
}

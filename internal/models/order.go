package models

import "time"

// Order statuses. An order only ever moves forward through these: the
// synchronous verify call and the asynchronous webhook are independent
// confirmations of the same gateway-side transition, so applying the same
// status twice (or out of order) must be harmless.
const (
	OrderStatusCreated    = "created"
	OrderStatusAuthorized = "authorized"
	OrderStatusPaid       = "paid"
	OrderStatusFailed     = "failed"
	OrderStatusRefunded   = "refunded"
)

// statusRank orders the happy-path statuses so that updates never downgrade
// an order. failed shares a rank with authorized: the gateway reports
// failures per payment attempt, and a later attempt can still be captured,
// so paid must stay reachable from failed.
var statusRank = map[string]int{
	OrderStatusCreated:    0,
	OrderStatusAuthorized: 1,
	OrderStatusFailed:     1,
	OrderStatusPaid:       2,
	OrderStatusRefunded:   3,
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// StatusAdvances reports whether moving from the current status to next is
// allowed. Replays and downgrades are not, which is what makes replayed
// webhooks and racing verify calls idempotent. failed and refunded carry
// extra constraints: a failed attempt only marks orders that have not been
// paid, and a refund only applies to an order that was.
func StatusAdvances(current, next string) bool {
	switch next {
	case OrderStatusFailed:
		return current == OrderStatusCreated || current == OrderStatusAuthorized
	case OrderStatusRefunded:
		return current == OrderStatusPaid
	}
	return statusRank[next] > statusRank[current]
}

// Order is the ledger record for a gateway-created order, keyed by the
// gateway's order id.
type Order struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Amount    int64     `json:"amount"` // smallest currency subunit (paise)
	Currency  string    `json:"currency" gorm:"type:varchar(8)"`
	Receipt   string    `json:"receipt"`
	Status    string    `json:"status" gorm:"type:varchar(16)"`
	PaymentID string    `json:"payment_id,omitempty" gorm:"type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

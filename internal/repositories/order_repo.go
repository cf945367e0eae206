package repositories

import (
	"dukaan/internal/models"
)

// OrderRepository defines the interface for the order ledger. Records are
// keyed by the gateway's order id.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	// UpdateStatus sets the order's status and, when non-empty, the payment
	// id. Whether a transition is allowed is the caller's decision.
	UpdateStatus(id string, status string, paymentID string) error
}

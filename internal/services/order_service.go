package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"dukaan/internal/models"
	"dukaan/internal/repositories"
	"dukaan/pkg/razorpay"

	"github.com/google/uuid"
)

// GatewayClient is the slice of the payment gateway this service needs.
type GatewayClient interface {
	CreateOrder(ctx context.Context, orderReq razorpay.OrderRequest) (*razorpay.OrderResponse, error)
}

// EventPublisher publishes payment lifecycle events to the message queue.
type EventPublisher interface {
	PublishPaymentEvent(eventData map[string]interface{}) error
}

// OrderService handles business logic related to gateway orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	gateway   GatewayClient
	mqClient  EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, gateway GatewayClient, mqClient EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		gateway:   gateway,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all ledger records.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single ledger record by its gateway id.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates an order at the gateway and records it in the ledger
// with status "created". Amount is in the smallest currency subunit and must
// be positive. Currency defaults to INR, receipt to a generated one.
func (s *OrderService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*models.Order, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer in minor units", ErrInvalidRequest)
	}
	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		receipt = "rcpt_" + uuid.New().String()
	}

	gatewayOrder, err := s.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1, // auto capture
	})
	if err != nil {
		// The wrapped detail stays in server logs; callers get ErrUpstream.
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// Echo the gateway's descriptor verbatim into the ledger record.
	newOrder := &models.Order{
		ID:        gatewayOrder.ID,
		Amount:    gatewayOrder.Amount,
		Currency:  gatewayOrder.Currency,
		Receipt:   gatewayOrder.Receipt,
		Status:    models.OrderStatusCreated,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to record order in ledger: %w", err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"event":    "order.created",
			"orderID":  newOrder.ID,
			"amount":   newOrder.Amount,
			"currency": newOrder.Currency,
			"status":   newOrder.Status,
		}
		if err := s.mqClient.PublishPaymentEvent(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", newOrder.ID, err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return newOrder, nil
}

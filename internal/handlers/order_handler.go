package handlers

import (
	"errors"
	"log"

	"dukaan/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for gateway orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. The
// create-order route lives at the top level because the hosted checkout
// client calls it by that exact path.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/create-order", h.HandleCreateOrder)
	orderRoutes := router.Group("/api/v1/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// createOrderRequest is the body of a create-order call. Amount is in the
// smallest currency subunit (paise).
type createOrderRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
	Receipt  string `json:"receipt" validate:"omitempty,max=40"`
}

// HandleCreateOrder creates an order at the gateway and returns its
// descriptor.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var orderRequest createOrderRequest
	if err := c.BodyParser(&orderRequest); err != nil {
		log.Printf("Error parsing create-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(orderRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "amount required (in paise)",
		})
	}

	order, err := h.service.CreateOrder(c.Context(), orderRequest.Amount, orderRequest.Currency, orderRequest.Receipt)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "amount required (in paise)",
			})
		}
		if errors.Is(err, services.ErrUpstream) {
			// Never leak gateway detail to the client.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Order creation failed",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders returns all ledger records.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns a single ledger record.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}
	return c.JSON(order)
}

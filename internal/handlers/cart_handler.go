package handlers

import (
	"errors"
	"log"
	"math"

	"dukaan/internal/models"
	"dukaan/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cartService  *services.CartService
	orderService *services.OrderService
	extractor    services.ProductExtractor
	validate     *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, orderService *services.OrderService, extractor services.ProductExtractor) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		orderService: orderService,
		extractor:    extractor,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Post("/extract", h.HandleAddFromMarkup)
	cartRoutes.Patch("/items/:id", h.HandleChangeQuantity)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/checkout", h.HandleCheckout)
}

// cartSummary renders the cart with its exact total, the rounded display
// total, and the badge count.
func cartSummary(cart models.Cart) fiber.Map {
	return fiber.Map{
		"items":         cart,
		"total":         cart.Total(),
		"display_total": int64(math.Round(cart.Total())),
		"count":         cart.ItemCount(),
	}
}

// HandleGetCart returns the current cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.cartService.GetCart()
	if err != nil {
		log.Printf("Error reading cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read cart",
		})
	}
	return c.JSON(cartSummary(cart))
}

// HandleAddItem adds an explicitly described product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var product models.CartItem
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing add-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	cart, err := h.cartService.AddItem(product)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error adding item to cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cartSummary(cart))
}

// HandleAddFromMarkup runs the product extractor chain over a markup
// snapshot and adds the inferred product to the cart.
func (h *CartHandler) HandleAddFromMarkup(c *fiber.Ctx) error {
	var markup models.Markup
	if err := c.BodyParser(&markup); err != nil {
		log.Printf("Error parsing markup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.extractor.Extract(markup)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No product data could be extracted from the markup",
		})
	}

	cart, err := h.cartService.AddItem(*product)
	if err != nil {
		log.Printf("Error adding extracted product to cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cartSummary(cart))
}

// HandleChangeQuantity adds a delta to an item's quantity. Quantities at or
// below zero remove the entry; an unknown id is a no-op.
func (h *CartHandler) HandleChangeQuantity(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var updateData struct {
		Delta int `json:"delta"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing quantity update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if updateData.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "delta must be a non-zero integer",
		})
	}

	cart, err := h.cartService.ChangeQuantity(itemID, updateData.Delta)
	if err != nil {
		log.Printf("Error changing quantity for item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.JSON(cartSummary(cart))
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.cartService.Clear(); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
		})
	}
	return c.JSON(cartSummary(models.Cart{}))
}

// HandleCheckout converts the cart total to minor units and creates a
// gateway order for it.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	var checkoutData struct {
		Currency string `json:"currency"`
		Receipt  string `json:"receipt"`
	}
	// Body is optional; both fields have defaults.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&checkoutData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	total, err := h.cartService.GetTotal()
	if err != nil {
		log.Printf("Error reading cart for checkout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read cart",
		})
	}
	if total <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": services.ErrEmptyCart.Error(),
		})
	}

	amount := int64(math.Round(total * 100)) // major units -> paise
	order, err := h.orderService.CreateOrder(c.Context(), amount, checkoutData.Currency, checkoutData.Receipt)
	if err != nil {
		log.Printf("Error creating checkout order: %v", err)
		if errors.Is(err, services.ErrUpstream) {
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

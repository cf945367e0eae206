package services

import (
	"fmt"

	"dukaan/internal/models"
	"dukaan/internal/repositories"
)

// CartService handles business logic for the shopping cart. Every mutation
// is a whole-cart read-modify-write against the injected store; multi-tab
// style concurrent writers are last-write-wins by design.
type CartService struct {
	store repositories.CartStore
}

// NewCartService creates a new CartService.
func NewCartService(store repositories.CartStore) *CartService {
	return &CartService{
		store: store,
	}
}

// GetCart returns the current cart.
func (s *CartService) GetCart() (models.Cart, error) {
	return s.store.Read()
}

// AddItem adds a product to the cart. Adding an id that is already present
// increments its quantity instead of duplicating the entry.
func (s *CartService) AddItem(product models.CartItem) (models.Cart, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidRequest)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: product price must not be negative", ErrInvalidRequest)
	}

	cart, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	if idx := cart.FindIndex(product.ID); idx >= 0 {
		cart[idx].Qty++
	} else {
		product.Qty = 1
		cart = append(cart, product)
	}

	if err := s.store.Write(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

// ChangeQuantity adds delta to the quantity of the item with the given id.
// An absent id is a no-op. An entry whose quantity drops to zero or below is
// removed; zero-quantity entries never persist.
func (s *CartService) ChangeQuantity(id string, delta int) (models.Cart, error) {
	cart, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	idx := cart.FindIndex(id)
	if idx < 0 {
		return cart, nil
	}

	cart[idx].Qty += delta
	if cart[idx].Qty <= 0 {
		cart = append(cart[:idx], cart[idx+1:]...)
	}

	if err := s.store.Write(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

// Clear replaces the cart with an empty one.
func (s *CartService) Clear() error {
	if err := s.store.Write(models.Cart{}); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// GetTotal returns the exact cart total in major currency units.
func (s *CartService) GetTotal() (float64, error) {
	cart, err := s.store.Read()
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// GetItemCount returns the sum of quantities across the cart.
func (s *CartService) GetItemCount() (int, error) {
	cart, err := s.store.Read()
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

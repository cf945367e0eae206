package repositories

import (
	"sync"

	"dukaan/internal/models"
)

// MockCartStore is an in-memory implementation of CartStore.
type MockCartStore struct {
	cart models.Cart
	mu   sync.RWMutex
}

// NewMockCartStore creates a new instance of MockCartStore.
func NewMockCartStore() *MockCartStore {
	return &MockCartStore{cart: models.Cart{}}
}

// Read returns a copy of the stored cart.
func (s *MockCartStore) Read() (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := make(models.Cart, len(s.cart))
	copy(cart, s.cart)
	return cart, nil
}

// Write replaces the stored cart.
func (s *MockCartStore) Write(cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = make(models.Cart, len(cart))
	copy(s.cart, cart)
	return nil
}

package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"dukaan/internal/models"
)

// FileCartStore keeps the cart in a single JSON file, the server-side analog
// of one localStorage key holding the whole cart.
type FileCartStore struct {
	path string
	mu   sync.Mutex
}

// NewFileCartStore creates a cart store backed by the given file path.
// The file is created lazily on first write.
func NewFileCartStore(path string) *FileCartStore {
	return &FileCartStore{path: path}
}

// Read loads the cart from disk. A missing, unreadable, or corrupt file is
// treated as an empty cart; the next write replaces it wholesale.
func (s *FileCartStore) Read() (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Cart storage unreadable (%v), starting with empty cart", err)
		}
		return models.Cart{}, nil
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		log.Printf("Cart storage corrupt (%v), starting with empty cart", err)
		return models.Cart{}, nil
	}
	return cart, nil
}

// Write replaces the stored cart with the given one.
func (s *FileCartStore) Write(cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart storage: %w", err)
	}
	return nil
}

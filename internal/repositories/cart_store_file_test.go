package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"dukaan/internal/models"
	"dukaan/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestFileCartStore_ReadMissingFileIsEmptyCart(t *testing.T) {
	store := repositories.NewFileCartStore(filepath.Join(t.TempDir(), "cart.json"))

	cart, err := store.Read()
	assert.NoError(t, err)
	assert.Empty(t, cart)
}

func TestFileCartStore_WriteReadRoundTrip(t *testing.T) {
	store := repositories.NewFileCartStore(filepath.Join(t.TempDir(), "cart.json"))

	cart := models.Cart{
		{ID: "laptop", Name: "Laptop", Price: 1200.00, Qty: 1},
		{ID: "mouse", Name: "Mouse", Price: 25.00, Img: "https://cdn.example.com/m.jpg", Qty: 3},
	}
	assert.NoError(t, store.Write(cart))

	reread, err := store.Read()
	assert.NoError(t, err)
	assert.Equal(t, cart, reread)
}

func TestFileCartStore_CorruptFileRecoversAsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	store := repositories.NewFileCartStore(path)
	cart, err := store.Read()
	assert.NoError(t, err)
	assert.Empty(t, cart)

	// The next write repairs the file wholesale.
	assert.NoError(t, store.Write(models.Cart{{ID: "pen", Name: "Pen", Price: 19.99, Qty: 1}}))
	reread, err := store.Read()
	assert.NoError(t, err)
	assert.Len(t, reread, 1)
}

func TestMockOrderRepository_UpdateStatus(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	order := &models.Order{ID: "order_abc", Amount: 9900, Currency: "INR", Status: models.OrderStatusCreated}
	assert.NoError(t, repo.Create(order))

	assert.NoError(t, repo.UpdateStatus("order_abc", models.OrderStatusPaid, "pay_123"))

	updated, err := repo.GetByID("order_abc")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)
	assert.Equal(t, "pay_123", updated.PaymentID)

	assert.Error(t, repo.UpdateStatus("order_missing", models.OrderStatusPaid, ""))
}

package models_test

import (
	"testing"

	"dukaan/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusAdvances(t *testing.T) {
	// Forward moves advance.
	assert.True(t, models.StatusAdvances(models.OrderStatusCreated, models.OrderStatusAuthorized))
	assert.True(t, models.StatusAdvances(models.OrderStatusCreated, models.OrderStatusPaid))
	assert.True(t, models.StatusAdvances(models.OrderStatusAuthorized, models.OrderStatusPaid))
	assert.True(t, models.StatusAdvances(models.OrderStatusPaid, models.OrderStatusRefunded))

	// Replays and downgrades do not.
	assert.False(t, models.StatusAdvances(models.OrderStatusPaid, models.OrderStatusPaid))
	assert.False(t, models.StatusAdvances(models.OrderStatusPaid, models.OrderStatusAuthorized))
	assert.False(t, models.StatusAdvances(models.OrderStatusAuthorized, models.OrderStatusAuthorized))
	assert.False(t, models.StatusAdvances(models.OrderStatusFailed, models.OrderStatusRefunded))

	// Failures are per payment attempt: a failed attempt never marks a paid
	// order, and a captured later attempt recovers a failed one.
	assert.True(t, models.StatusAdvances(models.OrderStatusCreated, models.OrderStatusFailed))
	assert.True(t, models.StatusAdvances(models.OrderStatusAuthorized, models.OrderStatusFailed))
	assert.False(t, models.StatusAdvances(models.OrderStatusPaid, models.OrderStatusFailed))
	assert.False(t, models.StatusAdvances(models.OrderStatusFailed, models.OrderStatusFailed))
	assert.True(t, models.StatusAdvances(models.OrderStatusFailed, models.OrderStatusPaid))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		models.OrderStatusCreated,
		models.OrderStatusAuthorized,
		models.OrderStatusPaid,
		models.OrderStatusFailed,
		models.OrderStatusRefunded,
	} {
		assert.True(t, models.ValidOrderStatus(s))
	}
	assert.False(t, models.ValidOrderStatus("shipped"))
}

func TestCartTotalAndCount(t *testing.T) {
	cart := models.Cart{
		{ID: "pen", Price: 19.99, Qty: 3},
		{ID: "book", Price: 250, Qty: 1},
	}
	assert.InDelta(t, 309.97, cart.Total(), 1e-9)
	assert.Equal(t, 4, cart.ItemCount())
	assert.Equal(t, 1, cart.FindIndex("book"))
	assert.Equal(t, -1, cart.FindIndex("missing"))
}

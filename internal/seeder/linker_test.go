package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketseed/internal/domain/entity"
	"marketseed/pkg/errors"
)

func TestPickBuyerExcludesSeller(t *testing.T) {
	rng := NewRand(42)
	userIDs := []string{"seller_1", "buyer_1", "buyer_2"}

	for i := 0; i < 100; i++ {
		buyer, err := PickBuyer(rng, "seller_1", userIDs)
		require.NoError(t, err)
		assert.NotEqual(t, "seller_1", buyer)
	}
}

func TestPickBuyerFailsWithoutCandidates(t *testing.T) {
	rng := NewRand(42)

	_, err := PickBuyer(rng, "seller_1", []string{"seller_1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVARIANT_VIOLATION"))
}

func TestPromoteReviewablePromotesToTarget(t *testing.T) {
	orders := []*entity.Order{
		{ID: "a", Status: entity.OrderPending},
		{ID: "b", Status: entity.OrderReceived},
		{ID: "c", Status: entity.OrderCancelled},
		{ID: "d", Status: entity.OrderProcessed},
		{ID: "e", Status: entity.OrderOutForDelivery},
	}

	received := PromoteReviewable(orders, 3)
	require.Len(t, received, 3)
	for _, o := range received {
		assert.Equal(t, entity.OrderReceived, o.Status)
	}

	// Cancelled orders are terminal and never promoted.
	assert.Equal(t, entity.OrderCancelled, orders[2].Status)
	// Promotion stops at the target, so the last promotable order keeps
	// its status.
	assert.Equal(t, entity.OrderOutForDelivery, orders[4].Status)
}

func TestPromoteReviewableShortInput(t *testing.T) {
	orders := []*entity.Order{
		{ID: "a", Status: entity.OrderCancelled},
		{ID: "b", Status: entity.OrderPending},
	}

	received := PromoteReviewable(orders, 5)
	require.Len(t, received, 1)
	assert.Equal(t, "b", received[0].ID)
}

func TestPromoteReviewableNoopWhenSatisfied(t *testing.T) {
	orders := []*entity.Order{
		{ID: "a", Status: entity.OrderReceived},
		{ID: "b", Status: entity.OrderPending},
	}

	received := PromoteReviewable(orders, 1)
	require.Len(t, received, 1)
	assert.Equal(t, entity.OrderPending, orders[1].Status)
}

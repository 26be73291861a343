package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersInvariants(t *testing.T) {
	f := NewFactory(NewRand(42))
	userIDs := []string{"buyer_1", "buyer_2", "seller_1", "seller_2"}
	products := f.Products(userIDs)

	orders, err := f.Orders(products, userIDs, 40)
	require.NoError(t, err)
	require.Len(t, orders, 40)

	byProduct := map[string]float64{}
	for _, p := range products {
		byProduct[p.ID] = p.Price
	}

	now := time.Now()
	for _, o := range orders {
		assert.NotEqual(t, o.BuyerID, o.SellerID)
		assert.Contains(t, byProduct, o.ProductID)
		assert.Equal(t, byProduct[o.ProductID], o.OriginalPrice)
		assert.LessOrEqual(t, o.Price, o.OriginalPrice)
		assert.GreaterOrEqual(t, o.Price, o.OriginalPrice*0.85-1)
		assert.GreaterOrEqual(t, o.Quantity, 1)
		assert.LessOrEqual(t, o.Quantity, 3)
		assert.Contains(t, orderStatuses, o.Status)
		assert.False(t, o.PurchaseDate.After(now))
	}
}

func TestOrdersCapAtProductPool(t *testing.T) {
	f := NewFactory(NewRand(7))
	userIDs := []string{"buyer_1", "seller_1"}
	products := f.Products(userIDs)

	orders, err := f.Orders(products, userIDs, len(products)+100)
	require.NoError(t, err)
	assert.Len(t, orders, len(products))
}

func TestOrdersPurchaseFollowsListing(t *testing.T) {
	f := NewFactory(NewRand(11))
	userIDs := []string{"buyer_1", "buyer_2", "seller_1"}
	products := f.Products(userIDs)

	listed := map[string]time.Time{}
	for _, p := range products {
		listed[p.ID] = p.ListedDate
	}

	orders, err := f.Orders(products, userIDs, 40)
	require.NoError(t, err)
	now := time.Now()
	for _, o := range orders {
		assert.False(t, o.PurchaseDate.Before(listed[o.ProductID]))
		assert.False(t, o.PurchaseDate.After(now))
	}
}

package seeder

import (
	"math"
	"time"

	"marketseed/internal/domain/entity"
)

var orderStatuses = []string{
	entity.OrderPending,
	entity.OrderProcessed,
	entity.OrderOutForDelivery,
	entity.OrderReceived,
	entity.OrderCancelled,
}

// Orders samples up to n products and derives one order per product: a
// buyer other than the seller, a 0-15% discount off the listed price and a
// purchase date 1-30 days after the listing. The request silently caps at
// the product pool size.
func (f *Factory) Orders(products []*entity.Product, userIDs []string, n int) ([]*entity.Order, error) {
	selected := sample(f.rng, products, n)
	orders := make([]*entity.Order, 0, len(selected))
	for _, p := range selected {
		buyerID, err := PickBuyer(f.rng, p.SellerID, userIDs)
		if err != nil {
			return nil, err
		}
		discount := f.rng.Between(0, 15)
		orders = append(orders, &entity.Order{
			ID:            shortID("order"),
			ProductID:     p.ID,
			BuyerID:       buyerID,
			SellerID:      p.SellerID,
			Quantity:      f.rng.Between(1, 3),
			Price:         math.Round(p.Price * (1 - float64(discount)/100)),
			OriginalPrice: p.Price,
			PurchaseDate:  f.seq.After(p.ListedDate, 1, 30, 24*time.Hour),
			Status:        f.rng.Pick(orderStatuses),
		})
	}
	return orders, nil
}

package seeder

import (
	"time"

	"marketseed/internal/domain/entity"
)

// Reviews derives up to n reviews from the already promoted Received
// orders (see PromoteReviewable). The reviewer is always the order's
// buyer, ratings skew positive (3-5), and the review date follows the
// purchase date by 1-14 days.
func (f *Factory) Reviews(received []*entity.Order, n int) []*entity.Review {
	selected := sample(f.rng, received, n)
	reviews := make([]*entity.Review, 0, len(selected))
	for _, o := range selected {
		rating := f.rng.Between(3, 5)
		text := f.rng.Pick(criticalReviewTexts)
		if rating >= 4 {
			text = f.rng.Pick(positiveReviewTexts)
		}
		imageURL := ""
		if f.rng.Chance(0.3) {
			imageURL = defaultProductImageURL
		}
		reviews = append(reviews, &entity.Review{
			ID:         shortID("review"),
			OrderID:    o.ID,
			ProductID:  o.ProductID,
			ReviewerID: o.BuyerID,
			SellerID:   o.SellerID,
			Rating:     rating,
			Text:       text,
			ImageURL:   imageURL,
			Date:       f.seq.After(o.PurchaseDate, 1, 14, 24*time.Hour),
		})
	}
	return reviews
}

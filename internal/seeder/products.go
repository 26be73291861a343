package seeder

import (
	"marketseed/internal/domain/entity"
)

// Products instantiates the full seed catalog, one product per template,
// listed within the past 90 days. Sellers are drawn from the whole user
// pool rather than seller-role users only, matching how the backend treats
// any user as a potential seller.
func (f *Factory) Products(userIDs []string) []*entity.Product {
	products := make([]*entity.Product, 0, CatalogSize())
	for _, category := range categories {
		for _, tmpl := range catalog[category] {
			products = append(products, &entity.Product{
				ID:          shortID(category),
				Name:        tmpl.Name,
				Description: tmpl.Description,
				Price:       tmpl.Price,
				ImageURL:    defaultProductImageURL,
				Category:    category,
				SellerID:    f.rng.Pick(userIDs),
				Condition:   f.rng.Pick(conditions),
				AdBoost:     f.rng.Between(1, 1000),
				ListedDate:  f.seq.WithinPastDays(90),
				Stock:       f.rng.Between(1, 10),
			})
		}
	}
	return products
}

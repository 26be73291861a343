package seeder

import (
	"marketseed/internal/domain/entity"
)

var reportStatuses = []string{
	entity.ReportPending,
	entity.ReportInvestigating,
	entity.ReportResolved,
	entity.ReportDismissed,
}

// Reports samples up to n products and files one report each from a user
// other than the product's seller. Status skews toward Pending for recent
// reports and toward Resolved/Dismissed for older ones.
func (f *Factory) Reports(products []*entity.Product, userIDs []string, n int) ([]*entity.Report, error) {
	selected := sample(f.rng, products, n)
	reports := make([]*entity.Report, 0, len(selected))
	for _, p := range selected {
		reporterID, err := PickBuyer(f.rng, p.SellerID, userIDs)
		if err != nil {
			return nil, err
		}
		reason := f.rng.Pick(reportReasons)

		daysAgo := f.rng.Between(0, 60)
		var weights []float64
		switch {
		case daysAgo < 7:
			weights = []float64{0.7, 0.3, 0, 0}
		case daysAgo < 14:
			weights = []float64{0.3, 0.5, 0.1, 0.1}
		default:
			weights = []float64{0.1, 0.2, 0.4, 0.3}
		}

		reports = append(reports, &entity.Report{
			ID:          shortID("report"),
			ReporterID:  reporterID,
			ProductID:   p.ID,
			SellerID:    p.SellerID,
			Reason:      reason,
			Description: reportDescriptions[reason],
			Timestamp:   f.seq.DaysAgo(daysAgo),
			Status:      f.rng.WeightedPick(reportStatuses, weights),
		})
	}
	return reports, nil
}

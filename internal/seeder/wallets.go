package seeder

import (
	"fmt"

	"marketseed/internal/domain/entity"
)

var txnTypes = []string{
	entity.TxnDeposit,
	entity.TxnWithdrawal,
	entity.TxnPurchase,
	entity.TxnSale,
}

// WalletTransactions emits one matched Purchase/Sale pair per paid order —
// equal magnitude, opposite sign, both stamped with the order's purchase
// date — followed by extra free-standing transactions in a recent window.
// The ledger is historical only; it is never reconciled against
// User.WalletBalance.
func (f *Factory) WalletTransactions(users []*entity.User, orders []*entity.Order, extra int) []*entity.WalletTransaction {
	var txns []*entity.WalletTransaction
	for _, o := range orders {
		if !o.Paid() {
			continue
		}
		txns = append(txns, &entity.WalletTransaction{
			ID:             shortID("transaction"),
			UserID:         o.BuyerID,
			Type:           entity.TxnPurchase,
			Amount:         -o.Price,
			Description:    fmt.Sprintf("Payment for order %s", o.ID),
			RelatedOrderID: o.ID,
			Timestamp:      o.PurchaseDate,
		})
		txns = append(txns, &entity.WalletTransaction{
			ID:             shortID("transaction"),
			UserID:         o.SellerID,
			Type:           entity.TxnSale,
			Amount:         o.Price,
			Description:    fmt.Sprintf("Payment received for order %s", o.ID),
			RelatedOrderID: o.ID,
			Timestamp:      o.PurchaseDate,
		})
	}

	for i := 0; i < extra; i++ {
		user := users[f.rng.Intn(len(users))]
		txnType := f.rng.Pick(txnTypes)
		amount := float64(f.rng.Between(10, 500))
		if txnType == entity.TxnWithdrawal || txnType == entity.TxnPurchase {
			amount = -amount
		}
		txns = append(txns, &entity.WalletTransaction{
			ID:          shortID("transaction"),
			UserID:      user.UID,
			Type:        txnType,
			Amount:      amount,
			Description: txnDescriptions[txnType],
			Timestamp:   f.seq.WithinPastDays(90),
		})
	}
	return txns
}

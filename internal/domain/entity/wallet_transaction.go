package entity

import (
	"time"
)

const (
	TxnDeposit    = "Deposit"
	TxnWithdrawal = "Withdrawal"
	TxnPurchase   = "Purchase"
	TxnSale       = "Sale"
)

type WalletTransaction struct {
	ID             string    `json:"id" firestore:"id"`
	UserID         string    `json:"user_id" firestore:"userId"`
	Type           string    `json:"type" firestore:"type"`
	Amount         float64   `json:"amount" firestore:"amount"`
	Description    string    `json:"description" firestore:"description"`
	RelatedOrderID string    `json:"related_order_id,omitempty" firestore:"relatedOrderId,omitempty"`
	Timestamp      time.Time `json:"timestamp" firestore:"timestamp"`
}

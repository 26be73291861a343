package entity

import (
	"time"
)

const (
	OrderPending        = "Pending"
	OrderProcessed      = "Processed"
	OrderOutForDelivery = "Out For Delivery"
	OrderReceived       = "Received"
	OrderCancelled      = "Cancelled"
)

type Order struct {
	ID            string    `json:"id" firestore:"id"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	BuyerID       string    `json:"buyer_id" firestore:"buyerId"`
	SellerID      string    `json:"seller_id" firestore:"sellerId"`
	Quantity      int       `json:"quantity" firestore:"quantity"`
	Price         float64   `json:"price" firestore:"price"`
	OriginalPrice float64   `json:"original_price" firestore:"originalPrice"`
	PurchaseDate  time.Time `json:"purchase_date" firestore:"purchaseDate"`
	Status        string    `json:"status" firestore:"status"`
}

// Paid reports whether the order has gone through payment, which is what
// qualifies it for buyer/seller wallet transactions.
func (o *Order) Paid() bool {
	switch o.Status {
	case OrderProcessed, OrderOutForDelivery, OrderReceived:
		return true
	}
	return false
}

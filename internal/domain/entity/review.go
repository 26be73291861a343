package entity

import (
	"time"
)

type Review struct {
	ID         string    `json:"id" firestore:"id"`
	OrderID    string    `json:"order_id" firestore:"orderId"`
	ProductID  string    `json:"product_id" firestore:"productId"`
	ReviewerID string    `json:"reviewer_id" firestore:"reviewerId"`
	SellerID   string    `json:"seller_id" firestore:"sellerId"`
	Rating     int       `json:"rating" firestore:"rating"`
	Text       string    `json:"text" firestore:"text"`
	ImageURL   string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Date       time.Time `json:"date" firestore:"date"`
}

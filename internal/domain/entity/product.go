package entity

import (
	"time"
)

type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	ImageURL    string    `json:"image_url" firestore:"imageUrl"`
	Category    string    `json:"category" firestore:"category"`
	SellerID    string    `json:"seller_id" firestore:"sellerId"`
	Condition   string    `json:"condition" firestore:"condition"`
	AdBoost     int       `json:"ad_boost" firestore:"adBoost"`
	ListedDate  time.Time `json:"listed_date" firestore:"listedDate"`
	Stock       int       `json:"stock" firestore:"stock"`
}

package entity

import (
	"time"
)

const (
	ReportPending       = "Pending"
	ReportInvestigating = "Investigating"
	ReportResolved      = "Resolved"
	ReportDismissed     = "Dismissed"
)

type Report struct {
	ID          string    `json:"id" firestore:"id"`
	ReporterID  string    `json:"reporter_id" firestore:"reporterId"`
	ProductID   string    `json:"product_id" firestore:"productId"`
	SellerID    string    `json:"seller_id" firestore:"sellerId"`
	Reason      string    `json:"reason" firestore:"reason"`
	Description string    `json:"description" firestore:"description"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
	Status      string    `json:"status" firestore:"status"`
}

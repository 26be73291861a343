package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	UID             string    `json:"uid" firestore:"uid"`
	Username        string    `json:"username" firestore:"username"`
	Email           string    `json:"email" firestore:"email"`
	ProfileImageURL string    `json:"profile_image_url" firestore:"profileImageUrl"`
	Address         string    `json:"address" firestore:"address"`
	Role            string    `json:"role" firestore:"role"`
	Rating          float64   `json:"rating" firestore:"rating"`
	WalletBalance   float64   `json:"wallet_balance" firestore:"walletBalance"`
	JoinDate        time.Time `json:"join_date" firestore:"joinDate"`
}

package entity

import (
	"time"
)

// Rating is a single user's score for a product. At most one rating exists
// per (product, user) pair; its document ID is the composite PairID, which
// makes the storage layer reject duplicate inserts.
type Rating struct {
	ID        string    `json:"id" firestore:"id"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Comment   string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	UserID    string    `json:"user" firestore:"userId"`
	ProductID string    `json:"product" firestore:"productId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// RatingPairID builds the deterministic document ID for a (product, user)
// pair.
func RatingPairID(productID, userID string) string {
	return productID + "_" + userID
}

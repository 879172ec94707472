package entity

import (
	"time"
)

// Reply is a nested comment under a review. ProductID is denormalized from
// the parent review for convenience at read time.
type Reply struct {
	ID        string    `json:"id" firestore:"id"`
	ReviewID  string    `json:"review" firestore:"reviewId"`
	ProductID string    `json:"product" firestore:"productId"`
	UserID    string    `json:"user" firestore:"userId"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

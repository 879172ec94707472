package entity

import (
	"time"
)

const (
	DietVeg    = "veg"
	DietNonVeg = "non-veg"
)

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`
	Media       []string `json:"media" firestore:"media"`
	VegOrNon    string   `json:"vegornon" firestore:"vegornon"`
	Category    string   `json:"category" firestore:"category"`

	// RatingValue is derived: the mean of all ratings referencing this
	// product rounded to one decimal, 0 when none exist. It is recomputed
	// after every rating mutation and never set from client input.
	RatingValue float64 `json:"ratingvalue" firestore:"ratingvalue"`

	RatingIDs []string `json:"ratings" firestore:"ratings"`
	ReviewIDs []string `json:"reviews" firestore:"reviews"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

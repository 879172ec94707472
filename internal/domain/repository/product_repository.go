package repository

import (
	"context"

	"goldenwok/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// Reference-list maintenance. Append and remove are atomic set-style
	// array mutations on the product document.
	AppendRating(ctx context.Context, productID, ratingID string) error
	RemoveRatings(ctx context.Context, productID string, ratingIDs []string) error
	AppendReview(ctx context.Context, productID, reviewID string) error
	RemoveReview(ctx context.Context, productID, reviewID string) error

	// SetRatingValue writes the derived aggregate only. Returns NotFound
	// when the product no longer exists.
	SetRatingValue(ctx context.Context, productID string, value float64) error
}

package repository

import (
	"context"

	"goldenwok/internal/domain/entity"
)

type RatingRepository interface {
	// Create inserts a rating under its composite (product, user) document
	// ID. Returns Conflict when a rating for the pair already exists; the
	// caller is expected to retry as an update.
	Create(ctx context.Context, rating *entity.Rating) error
	GetByID(ctx context.Context, id string) (*entity.Rating, error)
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Rating, error)
	List(ctx context.Context) ([]*entity.Rating, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Rating, error)
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

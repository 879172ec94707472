package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
)

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

// Create inserts under the composite (product, user) document ID.
// DocumentRef.Create fails on an existing document, which gives the
// storage-level uniqueness guarantee for the pair; the AlreadyExists
// outcome is surfaced as Conflict so the caller can retry as an update.
func (r *firestoreRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		rating.ID = entity.RatingPairID(rating.ProductID, rating.UserID)
	}

	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now

	_, err := r.client.Collection("ratings").Doc(rating.ID).Create(ctx, rating)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Rating for this product and user already exists", err)
		}
		return errors.Internal("Failed to create rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) GetByID(ctx context.Context, id string) (*entity.Rating, error) {
	doc, err := r.client.Collection("ratings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Rating", err)
		}
		return nil, errors.Internal("Failed to get rating", err)
	}

	var rating entity.Rating
	if err := doc.DataTo(&rating); err != nil {
		return nil, errors.Internal("Failed to parse rating data", err)
	}

	return &rating, nil
}

func (r *firestoreRatingRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Rating, error) {
	return r.GetByID(ctx, entity.RatingPairID(productID, userID))
}

func (r *firestoreRatingRepository) List(ctx context.Context) ([]*entity.Rating, error) {
	return r.collect(ctx, r.client.Collection("ratings").Query)
}

func (r *firestoreRatingRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Rating, error) {
	return r.collect(ctx, r.client.Collection("ratings").Where("productId", "==", productID))
}

func (r *firestoreRatingRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Rating, error) {
	return r.collect(ctx, r.client.Collection("ratings").Where("userId", "==", userID))
}

func (r *firestoreRatingRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Rating, error) {
	iter := query.Documents(ctx)

	var ratings []*entity.Rating
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate ratings", err)
		}

		var rating entity.Rating
		if err := doc.DataTo(&rating); err != nil {
			return nil, errors.Internal("Failed to parse rating data", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

func (r *firestoreRatingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	rating.UpdatedAt = time.Now()

	_, err := r.client.Collection("ratings").Doc(rating.ID).Set(ctx, rating)
	if err != nil {
		return errors.Internal("Failed to update rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("ratings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) DeleteByUser(ctx context.Context, userID string) error {
	iter := r.client.Collection("ratings").Where("userId", "==", userID).Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate ratings for deletion", err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to delete rating", err)
		}
	}

	return nil
}

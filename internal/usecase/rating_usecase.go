package usecase

import (
	"context"
	"math"
	"time"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/logger"
)

type RatingUseCase struct {
	ratingRepo  repository.RatingRepository
	productRepo repository.ProductRepository
}

func NewRatingUseCase(
	ratingRepo repository.RatingRepository,
	productRepo repository.ProductRepository,
) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo:  ratingRepo,
		productRepo: productRepo,
	}
}

type SubmitRatingInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// SubmitRating creates or updates the caller's rating for a product. A user
// holds at most one rating per product: a repeat submission overwrites the
// existing value and comment in place. The product aggregate is recomputed
// after the write.
func (uc *RatingUseCase) SubmitRating(ctx context.Context, userID string, input SubmitRatingInput) (*entity.Rating, error) {
	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	now := time.Now()
	rating := &entity.Rating{
		ID:        entity.RatingPairID(input.ProductID, userID),
		Rating:    input.Rating,
		Comment:   input.Comment,
		UserID:    userID,
		ProductID: input.ProductID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.ratingRepo.Create(ctx, rating)
	switch {
	case err == nil:
		// First rating for this pair: attach it to the product.
		if err := uc.productRepo.AppendRating(ctx, input.ProductID, rating.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, "CONFLICT"):
		// The pair already has a rating, possibly inserted by a concurrent
		// submission. Overwrite it in place.
		existing, getErr := uc.ratingRepo.GetByUserAndProduct(ctx, userID, input.ProductID)
		if getErr != nil {
			return nil, getErr
		}
		existing.Rating = input.Rating
		existing.Comment = input.Comment
		existing.UpdatedAt = now
		if err := uc.ratingRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		rating = existing
	default:
		return nil, err
	}

	uc.RecomputeProductRating(ctx, input.ProductID)

	return rating, nil
}

// DeleteRating removes a rating. Only the rating's owner or an admin may
// delete it. The product aggregate is recomputed afterwards.
func (uc *RatingUseCase) DeleteRating(ctx context.Context, ratingID, requesterID string, isAdmin bool) error {
	rating, err := uc.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		return err
	}

	if rating.UserID != requesterID && !isAdmin {
		return errors.Forbidden("Not allowed to delete this rating", nil)
	}

	if err := uc.productRepo.RemoveRatings(ctx, rating.ProductID, []string{rating.ID}); err != nil && !errors.Is(err, "NOT_FOUND") {
		return err
	}

	if err := uc.ratingRepo.Delete(ctx, ratingID); err != nil {
		return err
	}

	uc.RecomputeProductRating(ctx, rating.ProductID)

	return nil
}

func (uc *RatingUseCase) GetRating(ctx context.Context, id string) (*entity.Rating, error) {
	return uc.ratingRepo.GetByID(ctx, id)
}

func (uc *RatingUseCase) ListRatings(ctx context.Context) ([]*entity.Rating, error) {
	return uc.ratingRepo.List(ctx)
}

func (uc *RatingUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.Rating, error) {
	return uc.ratingRepo.ListByProduct(ctx, productID)
}

func (uc *RatingUseCase) ListByUser(ctx context.Context, userID string) ([]*entity.Rating, error) {
	return uc.ratingRepo.ListByUser(ctx, userID)
}

// RecomputeProductRating rereads every rating for the product and stores the
// mean, rounded to one decimal, on the product. Zero ratings store 0. The
// recomputation is idempotent and never fails the caller's operation: a
// product that vanished underneath it is logged and skipped.
func (uc *RatingUseCase) RecomputeProductRating(ctx context.Context, productID string) {
	ratings, err := uc.ratingRepo.ListByProduct(ctx, productID)
	if err != nil {
		logger.Error("Failed to list ratings for product %s: %v", productID, err)
		return
	}

	var value float64
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(ratings))
		value = math.Round(avg*10) / 10
	}

	if err := uc.productRepo.SetRatingValue(ctx, productID, value); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("Skipping rating aggregate for missing product %s", productID)
			return
		}
		logger.Error("Failed to store rating aggregate for product %s: %v", productID, err)
	}
}

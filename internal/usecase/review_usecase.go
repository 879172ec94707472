package usecase

import (
	"context"
	"strings"
	"time"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	replyRepo   repository.ReplyRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	replyRepo repository.ReplyRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		replyRepo:   replyRepo,
	}
}

type CreateReviewInput struct {
	ProductID string
	Content   string
	Images    []string
}

// CreateReview stores a review for a product and attaches its identifier to
// the product's review list.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.BadRequest("Review content is required", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		Content:   input.Content,
		UserID:    userID,
		ProductID: input.ProductID,
		Images:    input.Images,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.productRepo.AppendReview(ctx, input.ProductID, review.ID); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	return uc.reviewRepo.GetByID(ctx, id)
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx)
}

func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProduct(ctx, productID)
}

// DeleteReview removes a review, detaches it from its product and deletes
// its replies. Any authenticated caller may delete a review.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, reviewID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if err := uc.productRepo.RemoveReview(ctx, review.ProductID, review.ID); err != nil && !errors.Is(err, "NOT_FOUND") {
		return err
	}

	for _, replyID := range review.ReplyIDs {
		if err := uc.replyRepo.Delete(ctx, replyID); err != nil && !errors.Is(err, "NOT_FOUND") {
			logger.Error("Failed to delete reply %s of review %s: %v", replyID, reviewID, err)
		}
	}

	return uc.reviewRepo.Delete(ctx, reviewID)
}

// ToggleLike flips the caller's like on a review: liking an already-liked
// review retracts the like, liking a disliked review moves the vote across
// in one transition. Returns the review's updated counts and vote sets.
func (uc *ReviewUseCase) ToggleLike(ctx context.Context, reviewID, userID string) (*entity.VoteResult, error) {
	review, err := uc.reviewRepo.ToggleVote(ctx, reviewID, userID, entity.VoteLike)
	if err != nil {
		return nil, err
	}
	return review.VoteResult(), nil
}

// ToggleDislike is the mirror image of ToggleLike.
func (uc *ReviewUseCase) ToggleDislike(ctx context.Context, reviewID, userID string) (*entity.VoteResult, error) {
	review, err := uc.reviewRepo.ToggleVote(ctx, reviewID, userID, entity.VoteDislike)
	if err != nil {
		return nil, err
	}
	return review.VoteResult(), nil
}

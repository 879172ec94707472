package usecase

import (
	"context"
	"fmt"

	"goldenwok/internal/domain/repository"
)

// CleanupUseCase removes every trace of a user from dependent collections
// before the user record itself is deleted.
type CleanupUseCase struct {
	ratingRepo  repository.RatingRepository
	reviewRepo  repository.ReviewRepository
	replyRepo   repository.ReplyRepository
	productRepo repository.ProductRepository
	ratingUC    *RatingUseCase
}

func NewCleanupUseCase(
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
	replyRepo repository.ReplyRepository,
	productRepo repository.ProductRepository,
	ratingUC *RatingUseCase,
) *CleanupUseCase {
	return &CleanupUseCase{
		ratingRepo:  ratingRepo,
		reviewRepo:  reviewRepo,
		replyRepo:   replyRepo,
		productRepo: productRepo,
		ratingUC:    ratingUC,
	}
}

// PurgeUserData runs the full cascade for a user about to be deleted. The
// step ordering is load-bearing: ratings are detached from products before
// being deleted so a concurrent reader never sees a dangling reference, and
// product aggregates are recomputed only after the deletes land. The final
// two steps are global because the user may have voted on reviews they did
// not author. Any step failing aborts the cascade; the caller must not
// delete the user record in that case.
func (uc *CleanupUseCase) PurgeUserData(ctx context.Context, userID string) error {
	// Step 1: collect the user's ratings and the products they touch.
	ratings, err := uc.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("collect user ratings: %w", err)
	}

	ratingsByProduct := make(map[string][]string)
	for _, r := range ratings {
		ratingsByProduct[r.ProductID] = append(ratingsByProduct[r.ProductID], r.ID)
	}

	// Step 2: detach the ratings from their products.
	for productID, ratingIDs := range ratingsByProduct {
		if err := uc.productRepo.RemoveRatings(ctx, productID, ratingIDs); err != nil {
			return fmt.Errorf("detach ratings from product %s: %w", productID, err)
		}
	}

	// Step 3: delete the rating records.
	if err := uc.ratingRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user ratings: %w", err)
	}

	// Step 4: recompute aggregates for every affected product.
	for productID := range ratingsByProduct {
		uc.ratingUC.RecomputeProductRating(ctx, productID)
	}

	// Step 5: delete the user's reviews.
	if err := uc.reviewRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user reviews: %w", err)
	}

	// Step 6: delete the user's replies.
	if err := uc.replyRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user replies: %w", err)
	}

	// Step 7: retract the user's votes from every remaining review.
	if err := uc.reviewRepo.RemoveUserVotes(ctx, userID); err != nil {
		return fmt.Errorf("retract user votes: %w", err)
	}

	// Step 8: resync every review's vote counts from its sets. A full pass,
	// not a delta, so a partially applied step 7 from an earlier failed run
	// still converges.
	if err := uc.reviewRepo.ResyncVoteCounts(ctx); err != nil {
		return fmt.Errorf("resync vote counts: %w", err)
	}

	return nil
}

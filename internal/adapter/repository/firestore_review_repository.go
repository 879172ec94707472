package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	if review.Images == nil {
		review.Images = []string{}
	}
	if review.LikedBy == nil {
		review.LikedBy = []string{}
	}
	if review.DislikedBy == nil {
		review.DislikedBy = []string{}
	}
	if review.ReplyIDs == nil {
		review.ReplyIDs = []string{}
	}
	review.SyncVoteCounts()

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection("reviews").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	return r.collect(ctx, r.client.Collection("reviews").Query)
}

func (r *firestoreReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return r.collect(ctx, r.client.Collection("reviews").Where("productId", "==", productID))
}

func (r *firestoreReviewRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Review, error) {
	iter := query.Documents(ctx)

	var reviews []*entity.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *firestoreReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	review.UpdatedAt = time.Now()

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to update review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("reviews").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) DeleteByUser(ctx context.Context, userID string) error {
	iter := r.client.Collection("reviews").Where("userId", "==", userID).Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate reviews for deletion", err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to delete review", err)
		}
	}

	return nil
}

// ToggleVote runs the vote state machine inside a Firestore transaction so
// two concurrent toggles on the same review serialize instead of clobbering
// each other's counts.
func (r *firestoreReviewRepository) ToggleVote(ctx context.Context, reviewID, userID string, kind entity.VoteKind) (*entity.Review, error) {
	ref := r.client.Collection("reviews").Doc(reviewID)

	var review entity.Review
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&review); err != nil {
			return err
		}

		review.ApplyVoteToggle(userID, kind)
		review.UpdatedAt = time.Now()

		return tx.Set(ref, &review)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to toggle vote", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) RemoveUserVotes(ctx context.Context, userID string) error {
	for _, field := range []string{"likedBy", "dislikedBy"} {
		iter := r.client.Collection("reviews").Where(field, "array-contains", userID).Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return errors.Internal("Failed to iterate reviews for vote removal", err)
			}

			_, err = doc.Ref.Update(ctx, []firestore.Update{
				{Path: field, Value: firestore.ArrayRemove(userID)},
			})
			if err != nil {
				return errors.Internal("Failed to remove user vote", err)
			}
		}
	}

	return nil
}

func (r *firestoreReviewRepository) ResyncVoteCounts(ctx context.Context) error {
	reviews, err := r.List(ctx)
	if err != nil {
		return err
	}

	for _, review := range reviews {
		_, err := r.client.Collection("reviews").Doc(review.ID).Update(ctx, []firestore.Update{
			{Path: "likeCount", Value: len(review.LikedBy)},
			{Path: "dislikeCount", Value: len(review.DislikedBy)},
		})
		if err != nil {
			return errors.Internal("Failed to resync vote counts", err)
		}
	}

	return nil
}

func (r *firestoreReviewRepository) AppendReply(ctx context.Context, reviewID, replyID string) error {
	return r.updateReplies(ctx, reviewID, firestore.ArrayUnion(replyID))
}

func (r *firestoreReviewRepository) RemoveReply(ctx context.Context, reviewID, replyID string) error {
	return r.updateReplies(ctx, reviewID, firestore.ArrayRemove(replyID))
}

func (r *firestoreReviewRepository) updateReplies(ctx context.Context, reviewID string, value interface{}) error {
	_, err := r.client.Collection("reviews").Doc(reviewID).Update(ctx, []firestore.Update{
		{Path: "replies", Value: value},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Review", err)
		}
		return errors.Internal("Failed to update review replies", err)
	}

	return nil
}

package repository

import (
	"context"

	"goldenwok/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	List(ctx context.Context) ([]*entity.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error

	// ToggleVote flips the user's membership in the review's like or
	// dislike set as a single atomic read-modify-write of the review
	// document, keeping the other set mutually exclusive and both counts
	// equal to their set sizes. Returns NotFound when the review is gone.
	ToggleVote(ctx context.Context, reviewID, userID string, kind entity.VoteKind) (*entity.Review, error)

	// RemoveUserVotes retracts the user from likedBy/dislikedBy on every
	// review system-wide.
	RemoveUserVotes(ctx context.Context, userID string) error

	// ResyncVoteCounts recomputes likeCount/dislikeCount from the vote sets
	// for every review. Used as a full consistency pass, not a delta.
	ResyncVoteCounts(ctx context.Context) error

	AppendReply(ctx context.Context, reviewID, replyID string) error
	RemoveReply(ctx context.Context, reviewID, replyID string) error
}

package usecase

import (
	"context"
	"strings"
	"time"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
)

type ReplyUseCase struct {
	replyRepo  repository.ReplyRepository
	reviewRepo repository.ReviewRepository
}

func NewReplyUseCase(
	replyRepo repository.ReplyRepository,
	reviewRepo repository.ReviewRepository,
) *ReplyUseCase {
	return &ReplyUseCase{
		replyRepo:  replyRepo,
		reviewRepo: reviewRepo,
	}
}

type CreateReplyInput struct {
	ReviewID string
	Content  string
}

// CreateReply stores a reply under a review and attaches its identifier to
// the review's reply list.
func (uc *ReplyUseCase) CreateReply(ctx context.Context, userID string, input CreateReplyInput) (*entity.Reply, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.BadRequest("Reply content is required", nil)
	}

	review, err := uc.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reply := &entity.Reply{
		ReviewID:  review.ID,
		ProductID: review.ProductID,
		UserID:    userID,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	if err := uc.reviewRepo.AppendReply(ctx, review.ID, reply.ID); err != nil {
		return nil, err
	}

	return reply, nil
}

func (uc *ReplyUseCase) GetReply(ctx context.Context, id string) (*entity.Reply, error) {
	return uc.replyRepo.GetByID(ctx, id)
}

func (uc *ReplyUseCase) ListByReview(ctx context.Context, reviewID string) ([]*entity.Reply, error) {
	return uc.replyRepo.ListByReview(ctx, reviewID)
}

// DeleteReply removes a reply and detaches it from its review. Only the
// reply's author or an admin may delete it.
func (uc *ReplyUseCase) DeleteReply(ctx context.Context, replyID, requesterID string, isAdmin bool) error {
	reply, err := uc.replyRepo.GetByID(ctx, replyID)
	if err != nil {
		return err
	}

	if reply.UserID != requesterID && !isAdmin {
		return errors.Forbidden("Not allowed to delete this reply", nil)
	}

	if err := uc.reviewRepo.RemoveReply(ctx, reply.ReviewID, reply.ID); err != nil && !errors.Is(err, "NOT_FOUND") {
		return err
	}

	return uc.replyRepo.Delete(ctx, replyID)
}

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

type firestoreReplyRepository struct {
	client *firestore.Client
}

func NewFirestoreReplyRepository(client *firestore.Client) repository.ReplyRepository {
	return &firestoreReplyRepository{
		client: client,
	}
}

func (r *firestoreReplyRepository) Create(ctx context.Context, reply *entity.Reply) error {
	if reply.ID == "" {
		reply.ID = uuid.New().String()
	}

	now := time.Now()
	reply.CreatedAt = now
	reply.UpdatedAt = now

	_, err := r.client.Collection("replies").Doc(reply.ID).Set(ctx, reply)
	if err != nil {
		return errors.Internal("Failed to create reply", err)
	}

	return nil
}

func (r *firestoreReplyRepository) GetByID(ctx context.Context, id string) (*entity.Reply, error) {
	doc, err := r.client.Collection("replies").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Reply", err)
		}
		return nil, errors.Internal("Failed to get reply", err)
	}

	var reply entity.Reply
	if err := doc.DataTo(&reply); err != nil {
		return nil, errors.Internal("Failed to parse reply data", err)
	}

	return &reply, nil
}

func (r *firestoreReplyRepository) ListByReview(ctx context.Context, reviewID string) ([]*entity.Reply, error) {
	iter := r.client.Collection("replies").Where("reviewId", "==", reviewID).Documents(ctx)

	var replies []*entity.Reply
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate replies", err)
		}

		var reply entity.Reply
		if err := doc.DataTo(&reply); err != nil {
			return nil, errors.Internal("Failed to parse reply data", err)
		}
		replies = append(replies, &reply)
	}

	return replies, nil
}

func (r *firestoreReplyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("replies").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete reply", err)
	}

	return nil
}

func (r *firestoreReplyRepository) DeleteByUser(ctx context.Context, userID string) error {
	iter := r.client.Collection("replies").Where("userId", "==", userID).Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate replies for deletion", err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to delete reply", err)
		}
	}

	return nil
}

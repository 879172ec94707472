package repository

import (
	"context"

	"goldenwok/internal/domain/entity"
)

type ReplyRepository interface {
	Create(ctx context.Context, reply *entity.Reply) error
	GetByID(ctx context.Context, id string) (*entity.Reply, error)
	ListByReview(ctx context.Context, reviewID string) ([]*entity.Reply, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

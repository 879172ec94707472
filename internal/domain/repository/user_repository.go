package repository

import (
	"context"

	"goldenwok/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByName looks up a user by normalized display name.
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetByVerificationToken(ctx context.Context, hashedToken string) (*entity.User, error)
	GetByResetToken(ctx context.Context, hashedToken string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

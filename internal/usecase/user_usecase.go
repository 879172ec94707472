package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/logger"
)

type UserUseCase struct {
	userRepo  repository.UserRepository
	cleanupUC *CleanupUseCase
}

func NewUserUseCase(userRepo repository.UserRepository, cleanupUC *CleanupUseCase) *UserUseCase {
	return &UserUseCase{
		userRepo:  userRepo,
		cleanupUC: cleanupUC,
	}
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

// GetUserByName looks a user up by display name. Names are stored
// normalized, so the lookup is a case-insensitive exact match.
func (uc *UserUseCase) GetUserByName(ctx context.Context, name string) (*entity.User, error) {
	return uc.userRepo.GetByName(ctx, entity.NormalizeName(name))
}

type UpdateUserInput struct {
	Name    string
	Email   string
	IsAdmin *bool
}

// UpdateUser changes another account's name, email or admin flag. Passwords
// are out of scope here (they have their own flow). The admin flag is only
// applied when the requester is an admin; for anyone else it is ignored.
func (uc *UserUseCase) UpdateUser(ctx context.Context, userID string, input UpdateUserInput, requesterIsAdmin bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		normalized := entity.NormalizeName(input.Name)
		if normalized != user.Name {
			existing, err := uc.userRepo.GetByName(ctx, normalized)
			if err == nil && existing.ID != userID {
				return nil, errors.Conflict("Username is already taken", nil)
			}
			user.Name = normalized
		}
	}

	if input.Email != "" && input.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
		if err == nil && existing.ID != userID {
			return nil, errors.Conflict("Email is already registered", nil)
		}
		user.Email = input.Email
	}

	if input.IsAdmin != nil && requesterIsAdmin {
		user.IsAdmin = *input.IsAdmin
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateDetailsInput struct {
	Name           string
	Email          string
	ProfilePicture string
}

// UpdateDetails changes the user's display name, email or profile picture.
// Name and email uniqueness are re-checked against other accounts.
func (uc *UserUseCase) UpdateDetails(ctx context.Context, userID string, input UpdateDetailsInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		normalized := entity.NormalizeName(input.Name)
		if normalized != user.Name {
			existing, err := uc.userRepo.GetByName(ctx, normalized)
			if err == nil && existing.ID != userID {
				return nil, errors.Conflict("Username is already taken", nil)
			}
			user.Name = normalized
		}
	}

	if input.Email != "" && input.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
		if err == nil && existing.ID != userID {
			return nil, errors.Conflict("Email is already registered", nil)
		}
		user.Email = input.Email
	}

	if input.ProfilePicture != "" {
		user.ProfilePicture = input.ProfilePicture
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdatePassword rotates the user's password after checking the current one.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.PasswordHash == "" {
		return errors.BadRequest("This account uses Google sign-in and has no password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// DeleteUser removes an account. The dependent-data cascade runs first and
// must complete; when it fails the user record survives untouched so the
// whole deletion can be retried.
func (uc *UserUseCase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := uc.cleanupUC.PurgeUserData(ctx, userID); err != nil {
		logger.Error("Cascade cleanup for user %s failed: %v", userID, err)
		return errors.Internal("Failed to remove the account's data", err)
	}

	return uc.userRepo.Delete(ctx, userID)
}

package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenwok/internal/domain/entity"
	"goldenwok/pkg/errors"
)

func TestGetStats(t *testing.T) {
	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo()
	reviewRepo := newFakeReviewRepo()
	uc := NewAdminUseCase(userRepo, productRepo, reviewRepo)
	ctx := context.Background()

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u1", Name: "one", Email: "1@example.com"}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u2", Name: "two", Email: "2@example.com"}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "admin", Name: "admin", Email: "a@example.com", IsAdmin: true}))

	// Equal rating, more raters wins the tie.
	require.NoError(t, productRepo.Create(ctx, &entity.Product{ID: "p-few", Name: "Few", RatingValue: 4.5, RatingIDs: []string{"r1"}}))
	require.NoError(t, productRepo.Create(ctx, &entity.Product{ID: "p-many", Name: "Many", RatingValue: 4.5, RatingIDs: []string{"r2", "r3"}}))
	require.NoError(t, productRepo.Create(ctx, &entity.Product{ID: "p-top", Name: "Top", RatingValue: 5.0}))
	require.NoError(t, productRepo.Create(ctx, &entity.Product{ID: "p-last", Name: "Last", RatingValue: 1.0}))

	for i := 0; i < 5; i++ {
		review := &entity.Review{
			ID:      fmt.Sprintf("rev%d", i),
			Content: fmt.Sprintf("review %d", i),
			UserID:  "u1", ProductID: "p-top",
		}
		for j := 0; j < i; j++ {
			review.LikedBy = append(review.LikedBy, fmt.Sprintf("voter%d", j))
		}
		require.NoError(t, reviewRepo.Create(ctx, review))
	}

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalUsers, "admins are not counted")
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 5, stats.TotalReviews)

	require.Len(t, stats.TopProducts, 3)
	assert.Equal(t, "p-top", stats.TopProducts[0].ID)
	assert.Equal(t, "p-many", stats.TopProducts[1].ID)
	assert.Equal(t, "p-few", stats.TopProducts[2].ID)

	require.Len(t, stats.TopReviews, 3)
	assert.Equal(t, "rev4", stats.TopReviews[0].ID)
	assert.Equal(t, 4, stats.TopReviews[0].LikeCount)
	assert.Equal(t, "rev3", stats.TopReviews[1].ID)
	assert.Equal(t, "rev2", stats.TopReviews[2].ID)
}

func TestGetUserGrowthByDay(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAdminUseCase(userRepo, newFakeProductRepo(), newFakeReviewRepo())
	ctx := context.Background()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u1", Name: "one", Email: "1@example.com", CreatedAt: now}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u2", Name: "two", Email: "2@example.com", CreatedAt: now}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u3", Name: "three", Email: "3@example.com", CreatedAt: yesterday}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "admin", Name: "admin", Email: "a@example.com", IsAdmin: true, CreatedAt: now}))

	buckets, err := uc.GetUserGrowth(ctx, "day")
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, yesterday.Format("2006-01-02"), buckets[0].Period)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, now.Format("2006-01-02"), buckets[1].Period)
	assert.Equal(t, 2, buckets[1].Count, "admin signups are excluded")
}

func TestGetUserGrowthHourWindow(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAdminUseCase(userRepo, newFakeProductRepo(), newFakeReviewRepo())
	ctx := context.Background()

	recent := time.Now().Add(-time.Hour)
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u1", Name: "one", Email: "1@example.com", CreatedAt: recent}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u2", Name: "two", Email: "2@example.com", CreatedAt: stale}))

	buckets, err := uc.GetUserGrowth(ctx, "hour")
	require.NoError(t, err)
	require.Len(t, buckets, 1, "signups older than 24h are outside the window")
	assert.Equal(t, recent.Format("15"), buckets[0].Period)
}

func TestGetUserGrowthInvalidPeriod(t *testing.T) {
	uc := NewAdminUseCase(newFakeUserRepo(), newFakeProductRepo(), newFakeReviewRepo())

	_, err := uc.GetUserGrowth(context.Background(), "decade")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

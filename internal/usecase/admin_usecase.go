package usecase

import (
	"context"
	"sort"
	"time"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
)

type AdminUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

type TopProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	VegOrNon    string   `json:"vegornon"`
	Media       []string `json:"media"`
	RatingValue float64  `json:"ratingvalue"`
	NumRaters   int      `json:"numRaters"`
	NumReviews  int      `json:"numReviews"`
}

type TopReview struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	LikeCount int       `json:"likeCount"`
	UserID    string    `json:"user"`
	ProductID string    `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalUsers    int          `json:"totalUsers"`
	TotalProducts int          `json:"totalProducts"`
	TotalReviews  int          `json:"totalReviews"`
	TopProducts   []TopProduct `json:"topProducts"`
	TopReviews    []TopReview  `json:"topReviews"`
}

// GetStats assembles the dashboard numbers: entity totals (admins excluded
// from the user count), the three best-rated products with rater count as
// tie-break, and the three most-liked reviews.
func (uc *AdminUseCase) GetStats(ctx context.Context) (*DashboardStats, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.reviewRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers := 0
	for _, u := range users {
		if !u.IsAdmin {
			totalUsers++
		}
	}

	topProducts := make([]TopProduct, 0, len(products))
	for _, p := range products {
		topProducts = append(topProducts, TopProduct{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			VegOrNon:    p.VegOrNon,
			Media:       p.Media,
			RatingValue: p.RatingValue,
			NumRaters:   len(p.RatingIDs),
			NumReviews:  len(p.ReviewIDs),
		})
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		if topProducts[i].RatingValue != topProducts[j].RatingValue {
			return topProducts[i].RatingValue > topProducts[j].RatingValue
		}
		return topProducts[i].NumRaters > topProducts[j].NumRaters
	})
	if len(topProducts) > 3 {
		topProducts = topProducts[:3]
	}

	sorted := make([]*entity.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LikeCount > sorted[j].LikeCount
	})
	topReviews := make([]TopReview, 0, 3)
	for _, r := range sorted {
		if len(topReviews) == 3 {
			break
		}
		topReviews = append(topReviews, TopReview{
			ID:        r.ID,
			Content:   r.Content,
			LikeCount: r.LikeCount,
			UserID:    r.UserID,
			ProductID: r.ProductID,
			CreatedAt: r.CreatedAt,
		})
	}

	return &DashboardStats{
		TotalUsers:    totalUsers,
		TotalProducts: len(products),
		TotalReviews:  len(reviews),
		TopProducts:   topProducts,
		TopReviews:    topReviews,
	}, nil
}

type GrowthBucket struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// GetUserGrowth buckets non-admin signups by the requested period: the past
// 24 hours by hour, the 30 most recent days, the 12 most recent months, or
// all years.
func (uc *AdminUseCase) GetUserGrowth(ctx context.Context, period string) ([]GrowthBucket, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var layout string
	var cutoff time.Time
	limit := 0

	switch period {
	case "hour":
		layout = "15"
		cutoff = time.Now().Add(-24 * time.Hour)
	case "day", "":
		layout = "2006-01-02"
		limit = 30
	case "month":
		layout = "2006-01"
		limit = 12
	case "year":
		layout = "2006"
	default:
		return nil, errors.BadRequest("Period must be one of: hour, day, month, year", nil)
	}

	counts := make(map[string]int)
	for _, u := range users {
		if u.IsAdmin {
			continue
		}
		if !cutoff.IsZero() && u.CreatedAt.Before(cutoff) {
			continue
		}
		counts[u.CreatedAt.Format(layout)]++
	}

	buckets := make([]GrowthBucket, 0, len(counts))
	for k, v := range counts {
		buckets = append(buckets, GrowthBucket{Period: k, Count: v})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})
	if limit > 0 && len(buckets) > limit {
		buckets = buckets[len(buckets)-limit:]
	}

	return buckets, nil
}

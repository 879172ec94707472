package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if product.Media == nil {
		product.Media = []string{}
	}
	if product.RatingIDs == nil {
		product.RatingIDs = []string{}
	}
	if product.ReviewIDs == nil {
		product.ReviewIDs = []string{}
	}

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection("products").OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

// ListByCategory matches case-insensitively. Firestore has no
// case-insensitive operator, so the filter is applied in memory over the
// full collection, which stays small for a single restaurant's menu.
func (r *firestoreProductRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.ToLower(category)
	var products []*entity.Product
	for _, product := range all {
		if strings.Contains(strings.ToLower(product.Category), category) {
			products = append(products, product)
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) AppendRating(ctx context.Context, productID, ratingID string) error {
	return r.updateRefs(ctx, productID, "ratings", firestore.ArrayUnion(ratingID))
}

func (r *firestoreProductRepository) RemoveRatings(ctx context.Context, productID string, ratingIDs []string) error {
	if len(ratingIDs) == 0 {
		return nil
	}
	ids := make([]interface{}, len(ratingIDs))
	for i, id := range ratingIDs {
		ids[i] = id
	}
	return r.updateRefs(ctx, productID, "ratings", firestore.ArrayRemove(ids...))
}

func (r *firestoreProductRepository) AppendReview(ctx context.Context, productID, reviewID string) error {
	return r.updateRefs(ctx, productID, "reviews", firestore.ArrayUnion(reviewID))
}

func (r *firestoreProductRepository) RemoveReview(ctx context.Context, productID, reviewID string) error {
	return r.updateRefs(ctx, productID, "reviews", firestore.ArrayRemove(reviewID))
}

func (r *firestoreProductRepository) updateRefs(ctx context.Context, productID, field string, value interface{}) error {
	_, err := r.client.Collection("products").Doc(productID).Update(ctx, []firestore.Update{
		{Path: field, Value: value},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product references", err)
	}

	return nil
}

func (r *firestoreProductRepository) SetRatingValue(ctx context.Context, productID string, value float64) error {
	_, err := r.client.Collection("products").Doc(productID).Update(ctx, []firestore.Update{
		{Path: "ratingvalue", Value: value},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product rating value", err)
	}

	return nil
}

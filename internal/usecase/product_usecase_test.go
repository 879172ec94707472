package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenwok/internal/domain/entity"
	"goldenwok/pkg/errors"
)

func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:        "Kung Pao Chicken",
		Description: "Spicy stir-fry with peanuts",
		Price:       12.5,
		VegOrNon:    entity.DietNonVeg,
		Category:    "mains",
	}
}

func TestCreateProductValidation(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	blank := validProductInput()
	blank.Name = "   "
	_, err = uc.CreateProduct(ctx, blank)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	negative := validProductInput()
	negative.Price = -1
	_, err = uc.CreateProduct(ctx, negative)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	diet := validProductInput()
	diet.VegOrNon = "vegan"
	_, err = uc.CreateProduct(ctx, diet)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateProductPartial(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := NewProductUseCase(productRepo)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	// Simulate accumulated rating state the update must not disturb.
	created.RatingValue = 4.2
	created.RatingIDs = []string{"r1", "r2"}
	require.NoError(t, productRepo.Update(ctx, created))

	price := 15.0
	updated, err := uc.UpdateProduct(ctx, created.ID, UpdateProductInput{Price: &price, Category: "specials"})
	require.NoError(t, err)

	assert.Equal(t, 15.0, updated.Price)
	assert.Equal(t, "specials", updated.Category)
	assert.Equal(t, "Kung Pao Chicken", updated.Name, "omitted fields are untouched")
	assert.Equal(t, 4.2, updated.RatingValue)
	assert.Equal(t, []string{"r1", "r2"}, updated.RatingIDs)
}

func TestUpdateProductRejectsBadFields(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	negative := -3.0
	_, err = uc.UpdateProduct(ctx, created.ID, UpdateProductInput{Price: &negative})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateProduct(ctx, created.ID, UpdateProductInput{VegOrNon: "pescatarian"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateProduct(ctx, "missing", UpdateProductInput{})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteProduct(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := NewProductUseCase(productRepo)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, created.ID))
	_, err = uc.GetProduct(ctx, created.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	err = uc.DeleteProduct(ctx, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

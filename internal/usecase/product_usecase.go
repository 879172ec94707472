package usecase

import (
	"context"
	"strings"
	"time"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/domain/repository"
	"goldenwok/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	VegOrNon    string
	Category    string
	Media       []string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" || strings.TrimSpace(input.Category) == "" {
		return nil, errors.BadRequest("Name, description and category are required", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}
	if input.VegOrNon != entity.DietVeg && input.VegOrNon != entity.DietNonVeg {
		return nil, errors.BadRequest("Dietary flag must be veg or non-veg", nil)
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		VegOrNon:    input.VegOrNon,
		Category:    input.Category,
		Media:       input.Media,
		CreatedAt:   time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return uc.productRepo.ListByCategory(ctx, category)
}

type UpdateProductInput struct {
	Name        string
	Description string
	Price       *float64
	VegOrNon    string
	Category    string
	Media       []string
}

// UpdateProduct overwrites the provided fields. The derived rating value and
// the rating/review reference lists are never touched here.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.BadRequest("Price must not be negative", nil)
		}
		product.Price = *input.Price
	}
	if input.VegOrNon != "" {
		if input.VegOrNon != entity.DietVeg && input.VegOrNon != entity.DietNonVeg {
			return nil, errors.BadRequest("Dietary flag must be veg or non-veg", nil)
		}
		product.VegOrNon = input.VegOrNon
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if len(input.Media) > 0 {
		product.Media = input.Media
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}

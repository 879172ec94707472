package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/infrastructure/storage"
	"goldenwok/internal/usecase"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	storageClient  *storage.CloudStorageClient
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, storageClient *storage.CloudStorageClient) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		storageClient:  storageClient,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	products, err := h.productUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, products, len(products))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	products, err := h.productUseCase.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, products, len(products))
}

// CreateProduct accepts a multipart form: the product fields plus optional
// media files, which are uploaded before the record is stored.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Price must be a number", err))
	}

	media, err := h.collectMedia(c)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		VegOrNon:    c.FormValue("vegornon"),
		Category:    c.FormValue("category"),
		Media:       media,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	input := usecase.UpdateProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		VegOrNon:    c.FormValue("vegornon"),
		Category:    c.FormValue("category"),
	}

	if raw := c.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Price must be a number", err))
		}
		input.Price = &price
	}

	media, err := h.collectMedia(c)
	if err != nil {
		return response.Error(c, err)
	}
	input.Media = media

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, http.StatusOK, "Product deleted")
}

func (h *ProductHandler) collectMedia(c echo.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain form without files is fine.
		return nil, nil
	}

	files := form.File["media"]
	if len(files) == 0 {
		return nil, nil
	}

	return uploadMediaFiles(c, h.storageClient, files, "products")
}

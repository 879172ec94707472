package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/usecase"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

type RatingHandler struct {
	ratingUseCase *usecase.RatingUseCase
}

func NewRatingHandler(ratingUseCase *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{ratingUseCase: ratingUseCase}
}

func (h *RatingHandler) GetAllRatings(c echo.Context) error {
	ratings, err := h.ratingUseCase.ListRatings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, ratings, len(ratings))
}

func (h *RatingHandler) GetProductRatings(c echo.Context) error {
	ratings, err := h.ratingUseCase.ListByProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, ratings, len(ratings))
}

type submitRatingRequest struct {
	ProductID string `json:"product" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"omitempty,max=500"`
}

// SubmitRating creates the caller's rating for a product, or overwrites the
// existing one for the same product.
func (h *RatingHandler) SubmitRating(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	rating, err := h.ratingUseCase.SubmitRating(c.Request().Context(), uid, usecase.SubmitRatingInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, rating)
}

type updateRatingRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

// UpdateRating overwrites an existing rating by id. Only the owner or an
// admin may change it.
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	var req updateRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	existing, err := h.ratingUseCase.GetRating(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	if existing.UserID != uid && !isAdmin {
		return response.Error(c, errors.Forbidden("Not allowed to update this rating", nil))
	}

	rating, err := h.ratingUseCase.SubmitRating(c.Request().Context(), existing.UserID, usecase.SubmitRatingInput{
		ProductID: existing.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rating)
}

func (h *RatingHandler) DeleteRating(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	if err := h.ratingUseCase.DeleteRating(c.Request().Context(), c.Param("id"), uid, isAdmin); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, http.StatusOK, "Rating deleted")
}

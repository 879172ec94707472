package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/usecase"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

func (h *ReviewHandler) GetAllReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, reviews, len(reviews))
}

func (h *ReviewHandler) GetReviewsByProduct(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListByProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, reviews, len(reviews))
}

type createReviewRequest struct {
	ProductID string   `json:"product" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	Images    []string `json:"images" validate:"omitempty,dive,url"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), uid, usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Content:   req.Content,
		Images:    req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, http.StatusOK, "Review deleted")
}

func (h *ReviewHandler) ToggleLike(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	result, err := h.reviewUseCase.ToggleLike(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ReviewHandler) ToggleDislike(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	result, err := h.reviewUseCase.ToggleDislike(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

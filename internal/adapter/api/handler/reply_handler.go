package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/usecase"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

type ReplyHandler struct {
	replyUseCase *usecase.ReplyUseCase
}

func NewReplyHandler(replyUseCase *usecase.ReplyUseCase) *ReplyHandler {
	return &ReplyHandler{replyUseCase: replyUseCase}
}

func (h *ReplyHandler) GetReply(c echo.Context) error {
	reply, err := h.replyUseCase.GetReply(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reply)
}

func (h *ReplyHandler) GetRepliesByReview(c echo.Context) error {
	replies, err := h.replyUseCase.ListByReview(c.Request().Context(), c.Param("reviewId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, replies, len(replies))
}

type createReplyRequest struct {
	ReviewID string `json:"review" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

func (h *ReplyHandler) CreateReply(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req createReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.replyUseCase.CreateReply(c.Request().Context(), uid, usecase.CreateReplyInput{
		ReviewID: req.ReviewID,
		Content:  req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reply)
}

func (h *ReplyHandler) DeleteReply(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	if err := h.replyUseCase.DeleteReply(c.Request().Context(), c.Param("id"), uid, isAdmin); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, http.StatusOK, "Reply deleted")
}

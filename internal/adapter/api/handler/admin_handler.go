package handler

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/usecase"
	"goldenwok/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{adminUseCase: adminUseCase}
}

func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.adminUseCase.GetStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}

func (h *AdminHandler) GetUserGrowth(c echo.Context) error {
	buckets, err := h.adminUseCase.GetUserGrowth(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, buckets)
}

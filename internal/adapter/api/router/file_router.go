package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	e.POST("/api/uploads", fileHandler.Upload, authMiddleware.Authenticate)
}

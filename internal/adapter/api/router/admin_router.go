package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/stats", adminHandler.GetStats)
	admin.GET("/user-growth", adminHandler.GetUserGrowth)
}

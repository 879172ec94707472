package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	e.GET("/api/users/by-username/:username", userHandler.GetUserByUsername)

	users := e.Group("/api/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("", userHandler.GetAllUsers, adminMiddleware.AdminOnly)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)
}

package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public routes
	e.GET("/api/products", productHandler.GetAllProducts)
	e.GET("/api/products/category/:category", productHandler.GetProductsByCategory)
	e.GET("/api/products/:id", productHandler.GetProduct)

	// Admin routes
	admin := e.Group("/api/products")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}

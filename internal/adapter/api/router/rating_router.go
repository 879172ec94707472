package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupRatingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	ratingHandler := handler.GetRatingHandler()

	// Public routes
	e.GET("/api/ratings", ratingHandler.GetAllRatings)
	e.GET("/api/ratings/product/:productId", ratingHandler.GetProductRatings)

	// Protected routes
	protected := e.Group("/api/ratings")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", ratingHandler.SubmitRating)
	protected.PUT("/:id", ratingHandler.UpdateRating)
	protected.DELETE("/:id", ratingHandler.DeleteRating)
}

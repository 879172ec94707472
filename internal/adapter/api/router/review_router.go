package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	// Public routes
	e.GET("/api/reviews", reviewHandler.GetAllReviews)
	e.GET("/api/reviews/product/:productId", reviewHandler.GetReviewsByProduct)

	// Protected routes
	protected := e.Group("/api/reviews")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", reviewHandler.CreateReview)
	protected.DELETE("/:id", reviewHandler.DeleteReview)
	protected.PUT("/:id/like", reviewHandler.ToggleLike)
	protected.PUT("/:id/dislike", reviewHandler.ToggleDislike)
}

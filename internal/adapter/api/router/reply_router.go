package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupReplyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	replyHandler := handler.GetReplyHandler()

	// Public routes
	e.GET("/api/replies/review/:reviewId", replyHandler.GetRepliesByReview)
	e.GET("/api/replies/:id", replyHandler.GetReply)

	// Protected routes
	protected := e.Group("/api/replies")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("", replyHandler.CreateReply)
	protected.DELETE("/:id", replyHandler.DeleteReply)
}

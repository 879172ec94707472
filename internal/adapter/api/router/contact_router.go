package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupContactRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	contactHandler := handler.GetContactHandler()

	e.POST("/api/contact", contactHandler.SendMessage, rateLimitMiddleware.Limit("contact"))
}

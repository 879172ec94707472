package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	SetupAuthRouter(e, authMiddleware, rateLimitMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupRatingRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupReplyRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupContactRouter(e, rateLimitMiddleware)
	SetupHealthRouter(e)
}

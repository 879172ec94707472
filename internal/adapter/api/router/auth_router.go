package router

import (
	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/handler"
	"goldenwok/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/api/auth/register", authHandler.Register, rateLimitMiddleware.Limit("register"))
	e.POST("/api/auth/login", authHandler.Login, rateLimitMiddleware.Limit("login"))
	e.POST("/api/auth/google", authHandler.GoogleSignIn)
	e.POST("/api/auth/forgotpassword", authHandler.ForgotPassword, rateLimitMiddleware.Limit("forgot_password"))
	e.PUT("/api/auth/resetpassword/:token", authHandler.ResetPassword)
	e.GET("/api/auth/verify-email/:token", authHandler.VerifyEmail)
	e.GET("/api/auth/check-email", authHandler.CheckEmail)
	e.GET("/api/auth/check-username", authHandler.CheckUsername)

	// Protected routes
	protected := e.Group("/api/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/logout", authHandler.Logout)
	protected.GET("/me", authHandler.GetMe)
	protected.GET("/verify-token", authHandler.VerifyToken)
	protected.PUT("/updatedetails", authHandler.UpdateDetails)
	protected.PUT("/updatepassword", authHandler.UpdatePassword)
}

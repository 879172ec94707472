package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/adapter/api/middleware"
	"goldenwok/internal/infrastructure/token"
	"goldenwok/internal/usecase"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

type AuthHandler struct {
	authUseCase  *usecase.AuthUseCase
	userUseCase  *usecase.UserUseCase
	cookieSecure bool
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		userUseCase:  userUseCase,
		cookieSecure: cookieSecure,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user.Profile())
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, sessionToken, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	h.setSessionCookie(c, sessionToken)

	return response.Success(c, echo.Map{
		"token": sessionToken,
		"user":  user.Profile(),
	})
}

type googleSignInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, sessionToken, err := h.authUseCase.GoogleSignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.Error(c, err)
	}

	h.setSessionCookie(c, sessionToken)

	return response.Success(c, echo.Map{
		"token": sessionToken,
		"user":  user.Profile(),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if claims, ok := c.Get("claims").(*token.Claims); ok {
		if err := h.authUseCase.Logout(c.Request().Context(), claims); err != nil {
			return response.Error(c, err)
		}
	}

	h.clearSessionCookie(c)

	return response.Message(c, http.StatusOK, "Successfully logged out")
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	rawToken := c.Param("token")
	if rawToken == "" {
		return response.Error(c, errors.BadRequest("Verification token is required", nil))
	}

	user, err := h.authUseCase.VerifyEmail(c.Request().Context(), rawToken)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Profile())
}

// VerifyToken reports whether the presented session is still valid. The
// auth middleware already rejected anything invalid, so reaching here means
// the token holds.
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return response.Success(c, echo.Map{"valid": true, "id": uid})
}

func (h *AuthHandler) GetMe(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	user, err := h.userUseCase.GetUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Profile())
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, http.StatusOK, "Password reset email sent")
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	rawToken := c.Param("token")
	if rawToken == "" {
		return response.Error(c, errors.BadRequest("Reset token is required", nil))
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.ResetPassword(c.Request().Context(), rawToken, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Profile())
}

// CheckEmail is a pre-flight for the frontend's registration and
// password-reset forms.
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-store")

	email := c.QueryParam("email")
	if email == "" {
		return response.Success(c, echo.Map{"exists": false})
	}

	exists, googleSignIn := h.authUseCase.CheckEmail(c.Request().Context(), email)
	if exists && googleSignIn {
		return response.Success(c, echo.Map{
			"exists":       true,
			"googleSignIn": true,
			"message":      "This account was registered using Google sign-in",
		})
	}

	return response.Success(c, echo.Map{"exists": exists, "googleSignIn": false})
}

func (h *AuthHandler) CheckUsername(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return response.Success(c, echo.Map{"exists": false})
	}

	exists := h.authUseCase.CheckUsername(c.Request().Context(), name)
	return response.Success(c, echo.Map{"exists": exists})
}

type updateDetailsRequest struct {
	Name           string `json:"name" validate:"omitempty,min=3"`
	Email          string `json:"email" validate:"omitempty,email"`
	ProfilePicture string `json:"profilePicture" validate:"omitempty,url"`
}

func (h *AuthHandler) UpdateDetails(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req updateDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateDetails(c.Request().Context(), uid, usecase.UpdateDetailsInput{
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Profile())
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.UpdatePassword(c.Request().Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, http.StatusOK, "Password updated")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sessionToken string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"goldenwok/internal/domain/entity"
	"goldenwok/internal/usecase"
	"goldenwok/pkg/errors"
	"goldenwok/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	profiles := make([]entity.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}

	return response.List(c, profiles, len(profiles))
}

// GetUser returns a single profile. Users may read their own; admins any.
func (h *UserHandler) GetUser(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	targetID := c.Param("id")
	if targetID != uid && !isAdmin {
		return response.Error(c, errors.Forbidden("Not allowed to access this profile", nil))
	}

	user, err := h.userUseCase.GetUser(c.Request().Context(), targetID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Profile())
}

// GetUserByUsername is the public profile lookup. The match is
// case-insensitive since names are stored normalized.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	user, err := h.userUseCase.GetUserByName(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Profile())
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	IsAdmin  *bool  `json:"isAdmin"`
}

// UpdateUser changes an account's name, email or admin flag. Users may edit
// their own account; admins any. Only admins can change the admin flag, and
// passwords are never updated through this route.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	targetID := c.Param("id")
	if targetID != uid && !isAdmin {
		return response.Error(c, errors.Forbidden("Not allowed to update this account", nil))
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	if req.Password != "" {
		return response.Error(c, errors.BadRequest("This route is not for password updates. Please use /api/auth/updatepassword", nil))
	}

	user, err := h.userUseCase.UpdateUser(c.Request().Context(), targetID, usecase.UpdateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		IsAdmin: req.IsAdmin,
	}, isAdmin)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Profile())
}

// DeleteUser removes an account together with all of its dependent data.
// Users may delete themselves; admins may delete anyone.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	targetID := c.Param("id")
	if targetID != uid && !isAdmin {
		return response.Error(c, errors.Forbidden("Not allowed to delete this account", nil))
	}

	if err := h.userUseCase.DeleteUser(c.Request().Context(), targetID); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, http.StatusOK, "Account deleted")
}

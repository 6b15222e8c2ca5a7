// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "github.com/oliviahealth/Careplan/internal/delivery/context"
	"github.com/oliviahealth/Careplan/internal/delivery/http/response"
	"github.com/oliviahealth/Careplan/internal/domain/entity"
	domainerrors "github.com/oliviahealth/Careplan/internal/domain/errors"
	"github.com/oliviahealth/Careplan/internal/usecase"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateAccountRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// --- Response DTOs ---

// accountResponse is the wire shape of an account. The password hash never
// leaves the server.
type accountResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateCreated time.Time `json:"date_created"`
}

type sessionResponse struct {
	User        accountResponse `json:"user"`
	AccessToken string          `json:"access_token"`
}

func toAccountResponse(user *entity.User) accountResponse {
	return accountResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		DateCreated: user.DateCreated,
	}
}

// SignUp handles the account registration request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sessionResponse{
		User:        toAccountResponse(output.User),
		AccessToken: output.AccessToken,
	}, "Account created successfully")
}

// SignIn handles the authentication request.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		User:        toAccountResponse(output.User),
		AccessToken: output.AccessToken,
	}, "Signed in successfully")
}

// SignOut revokes the presented token for the rest of its validity window.
func (h *AccountHandler) SignOut(c echo.Context) error {
	jti, ok := deliverycontext.GetTokenID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	expiresAt, ok := deliverycontext.GetTokenExpiry(c)
	if !ok {
		// Without a parsed expiry, hold the jti for the maximum token
		// lifetime instead of failing the sign-out.
		expiresAt = time.Now().Add(time.Hour)
	}

	if err := h.uc.SignOut(c.Request().Context(), jti, expiresAt); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out successfully")
}

// GetAccount returns the authenticated account's profile.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.uc.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(user), "")
}

// UpdateAccount replaces the authenticated account's profile.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateAccount(c.Request().Context(), usecase.UpdateAccountInput{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(user), "Account updated successfully")
}

// DeleteAccount removes the authenticated account and all its records.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

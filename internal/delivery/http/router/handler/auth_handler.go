// Package handler contains the HTTP handlers for the dev server.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the auth endpoints.
type AuthHandler struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Signup handles account registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input service.SignupProfile
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	hash, err := h.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	account := &repository.Account{
		User: entity.User{
			ID:        uuid.NewString(),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
		},
		PasswordHash: hash,
	}

	if err := h.accounts.Create(c.Request().Context(), account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return errors.Wrap(err, "create account")
	}

	token, err := h.tokenSvc.Generate(account.User.ID)
	if err != nil {
		return errors.Wrap(err, "generate token")
	}

	h.logger.Info("account created", slog.String("email", account.User.Email))

	return response.Success(c, http.StatusCreated, service.AuthResult{Token: token, User: &account.User}, "Signup successful")
}

// Login handles email/password authentication.
func (h *AuthHandler) Login(c echo.Context) error {
	var input service.Credentials
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	account, err := h.accounts.FindByEmail(c.Request().Context(), input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return errors.Wrap(err, "find account")
	}

	if !h.hasher.Check(input.Password, account.PasswordHash) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := h.tokenSvc.Generate(account.User.ID)
	if err != nil {
		return errors.Wrap(err, "generate token")
	}

	return response.Success(c, http.StatusOK, service.AuthResult{Token: token, User: &account.User}, "Login successful")
}

// Profile returns the authenticated user's record.
func (h *AuthHandler) Profile(c echo.Context) error {
	account, err := h.accounts.FindByID(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(domainerrors.ErrNotFound)
	}

	return response.Success(c, http.StatusOK, account.User, "")
}

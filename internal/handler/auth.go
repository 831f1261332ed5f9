// Package handler exposes the HTTP surface of the service.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mrodriguezdev/mytineraries-api/internal/httputil"
	"github.com/mrodriguezdev/mytineraries-api/internal/payload"
	"github.com/mrodriguezdev/mytineraries-api/internal/usecase"
	"github.com/mrodriguezdev/mytineraries-api/internal/validate"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *zerolog.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// Register handles POST /users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	if fieldErrs := validate.Struct(req); fieldErrs != nil {
		httputil.FieldErrors(w, fieldErrs)
		return
	}

	user, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailInUse):
			httputil.Error(w, http.StatusConflict, "Email is already in use")
		default:
			h.logger.Error().Err(err).Msg("failed to register user")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, payload.RegisterResponse{
		ID:       user.ID.Hex(),
		UserName: user.Name,
		Email:    user.Email,
	})
}

// Login handles POST /users/login. Every failure that is not a store outage
// produces the same response so callers cannot probe which emails exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		invalidCredentials(w)
		return
	}

	if fieldErrs := validate.Struct(req); fieldErrs != nil {
		invalidCredentials(w)
		return
	}

	token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			invalidCredentials(w)
		default:
			h.logger.Error().Err(err).Msg("failed to log in user")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, payload.LoginResponse{Token: token})
}

func invalidCredentials(w http.ResponseWriter) {
	httputil.Error(w, http.StatusUnauthorized, "Invalid credentials")
}

package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mrodriguezdev/mytineraries-api/internal/httputil"
	"github.com/mrodriguezdev/mytineraries-api/internal/middleware"
	"github.com/mrodriguezdev/mytineraries-api/internal/payload"
	"github.com/mrodriguezdev/mytineraries-api/internal/usecase"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *zerolog.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *zerolog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// Profile handles GET /users: the authenticated user's profile with
// favorites dereferenced.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, favorites, err := h.userUsecase.Profile(r.Context(), identity.ID.Hex())
	if err != nil {
		h.respondFavoritesError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, payload.NewProfileResponse(user, favorites))
}

// AddFavorite handles POST /users/favoriteItineraries/{itineraryID}.
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := chi.URLParam(r, "itineraryID")
	user, favorites, err := h.userUsecase.AddFavorite(r.Context(), identity, itineraryID)
	if err != nil {
		h.respondFavoritesError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, payload.NewProfileResponse(user, favorites))
}

// RemoveFavorite handles DELETE /users/favoriteItineraries/{itineraryID}.
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := chi.URLParam(r, "itineraryID")
	user, favorites, err := h.userUsecase.RemoveFavorite(r.Context(), identity, itineraryID)
	if err != nil {
		h.respondFavoritesError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, payload.NewProfileResponse(user, favorites))
}

func (h *UserHandler) respondFavoritesError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidItineraryID):
		httputil.JSON(w, http.StatusUnprocessableEntity, httputil.ErrorResponse{
			Errors: []httputil.ErrorItem{{Field: "itineraryID", Msg: "must be a valid itinerary id"}},
		})
	case errors.Is(err, usecase.ErrAlreadyFavorited):
		httputil.Error(w, http.StatusConflict, "Itinerary is already in favorites")
	case errors.Is(err, usecase.ErrNotFavorited):
		httputil.Error(w, http.StatusNotFound, "Itinerary is not in favorites")
	case errors.Is(err, usecase.ErrUserNotFound):
		httputil.Error(w, http.StatusNotFound, "User not found")
	default:
		h.logger.Error().Err(err).Msg("favorites operation failed")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
	}
}

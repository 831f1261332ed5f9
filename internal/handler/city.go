package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mrodriguezdev/mytineraries-api/internal/httputil"
	"github.com/mrodriguezdev/mytineraries-api/internal/payload"
	"github.com/mrodriguezdev/mytineraries-api/internal/usecase"
)

type CityHandler struct {
	cityUsecase usecase.CityUsecase
	logger      *zerolog.Logger
}

func NewCityHandler(cityUsecase usecase.CityUsecase, logger *zerolog.Logger) *CityHandler {
	return &CityHandler{
		cityUsecase: cityUsecase,
		logger:      logger,
	}
}

// ListCities handles GET /cities.
func (h *CityHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cityUsecase.ListCities(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list cities")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.JSON(w, http.StatusOK, cities)
}

// GetCity handles GET /cities/{cityID}.
func (h *CityHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")

	city, err := h.cityUsecase.GetCity(r.Context(), cityID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCityID):
			httputil.JSON(w, http.StatusUnprocessableEntity, httputil.ErrorResponse{
				Errors: []httputil.ErrorItem{{Field: "cityID", Msg: "must be a valid city id"}},
			})
		case errors.Is(err, usecase.ErrCityNotFound):
			httputil.Error(w, http.StatusNotFound, "City not found")
		default:
			h.logger.Error().Err(err).Msg("failed to get city")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, city)
}

// CityItineraries handles GET /cities/{cityID}/itineraries.
func (h *CityHandler) CityItineraries(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")

	itineraries, err := h.cityUsecase.CityItineraries(r.Context(), cityID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCityID):
			httputil.JSON(w, http.StatusUnprocessableEntity, httputil.ErrorResponse{
				Errors: []httputil.ErrorItem{{Field: "cityID", Msg: "must be a valid city id"}},
			})
		default:
			h.logger.Error().Err(err).Msg("failed to list city itineraries")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, payload.NewItinerarySummaries(itineraries))
}

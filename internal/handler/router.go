package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mrodriguezdev/mytineraries-api/internal/auth"
	"github.com/mrodriguezdev/mytineraries-api/internal/config"
	"github.com/mrodriguezdev/mytineraries-api/internal/middleware"
	"github.com/mrodriguezdev/mytineraries-api/internal/repository"
	"github.com/mrodriguezdev/mytineraries-api/internal/usecase"
)

// NewRouter assembles the route table. Registration, login and the city
// lookups are public; everything under the group goes through the token gate.
func NewRouter(
	cfg *config.Config,
	logger *zerolog.Logger,
	jwtAuth auth.JWTAuthenticator,
	userRepo repository.UserRepository,
	authUsecase usecase.AuthUsecase,
	userUsecase usecase.UserUsecase,
	cityUsecase usecase.CityUsecase,
) *chi.Mux {
	authHandler := NewAuthHandler(authUsecase, logger)
	userHandler := NewUserHandler(userUsecase, logger)
	cityHandler := NewCityHandler(cityUsecase, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.Post("/users", authHandler.Register)
	r.Post("/users/login", authHandler.Login)

	r.Get("/cities", cityHandler.ListCities)
	r.Get("/cities/{cityID}", cityHandler.GetCity)
	r.Get("/cities/{cityID}/itineraries", cityHandler.CityItineraries)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtAuth, cfg.JWTSecret, userRepo, logger))

		r.Get("/users", userHandler.Profile)
		r.Post("/users/favoriteItineraries/{itineraryID}", userHandler.AddFavorite)
		r.Delete("/users/favoriteItineraries/{itineraryID}", userHandler.RemoveFavorite)
	})

	return r
}

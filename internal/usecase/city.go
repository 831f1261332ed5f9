package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mrodriguezdev/mytineraries-api/internal/model"
	"github.com/mrodriguezdev/mytineraries-api/internal/repository"
)

// CityUsecase defines the read-only city lookups.
type CityUsecase interface {
	ListCities(ctx context.Context) ([]model.City, error)
	GetCity(ctx context.Context, cityID string) (*model.City, error)
	CityItineraries(ctx context.Context, cityID string) ([]model.Itinerary, error)
}

var (
	ErrInvalidCityID = errors.New("invalid city id")
	ErrCityNotFound  = errors.New("city not found")
)

type cityUsecase struct {
	cityRepo      repository.CityRepository
	itineraryRepo repository.ItineraryRepository
}

func NewCityUsecase(
	cityRepo repository.CityRepository,
	itineraryRepo repository.ItineraryRepository,
) CityUsecase {
	return &cityUsecase{
		cityRepo:      cityRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (u *cityUsecase) ListCities(ctx context.Context) ([]model.City, error) {
	return u.cityRepo.ListCities(ctx)
}

func (u *cityUsecase) GetCity(ctx context.Context, cityID string) (*model.City, error) {
	if _, err := bson.ObjectIDFromHex(cityID); err != nil {
		return nil, ErrInvalidCityID
	}

	city, err := u.cityRepo.GetCity(ctx, cityID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCityNotFound
		}

		return nil, err
	}

	return city, nil
}

// CityItineraries lists the itineraries of a city. An unknown but well-formed
// city id yields an empty list, not an error.
func (u *cityUsecase) CityItineraries(ctx context.Context, cityID string) ([]model.Itinerary, error) {
	objectID, err := bson.ObjectIDFromHex(cityID)
	if err != nil {
		return nil, ErrInvalidCityID
	}

	return u.itineraryRepo.ListByCity(ctx, objectID)
}

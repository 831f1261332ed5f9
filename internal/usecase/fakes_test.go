package usecase

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mrodriguezdev/mytineraries-api/internal/model"
)

// fakeUserRepo is an in-memory UserRepository with the same case-insensitive
// email semantics as the mongo implementation.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}

	user.ID = bson.NewObjectID()
	if user.FavoriteItineraries == nil {
		user.FavoriteItineraries = []bson.ObjectID{}
	}
	stored := *user
	r.users[user.ID.Hex()] = &stored

	return user, nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	clone := *user
	clone.FavoriteItineraries = append([]bson.ObjectID{}, user.FavoriteItineraries...)
	return &clone, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) AddFavorite(_ context.Context, id string, itineraryID bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}

	for _, fav := range user.FavoriteItineraries {
		if fav == itineraryID {
			return nil
		}
	}
	user.FavoriteItineraries = append(user.FavoriteItineraries, itineraryID)

	return nil
}

func (r *fakeUserRepo) RemoveFavorite(_ context.Context, id string, itineraryID bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}

	kept := user.FavoriteItineraries[:0]
	for _, fav := range user.FavoriteItineraries {
		if fav != itineraryID {
			kept = append(kept, fav)
		}
	}
	user.FavoriteItineraries = kept

	return nil
}

// fakeItineraryRepo serves a fixed set of itineraries.
type fakeItineraryRepo struct {
	details map[string]model.ItineraryDetail
}

func newFakeItineraryRepo(details ...model.ItineraryDetail) *fakeItineraryRepo {
	repo := &fakeItineraryRepo{details: map[string]model.ItineraryDetail{}}
	for _, detail := range details {
		repo.details[detail.ID.Hex()] = detail
	}
	return repo
}

func (r *fakeItineraryRepo) ListByIDs(_ context.Context, ids []bson.ObjectID) ([]model.ItineraryDetail, error) {
	found := []model.ItineraryDetail{}
	for _, id := range ids {
		if detail, ok := r.details[id.Hex()]; ok {
			found = append(found, detail)
		}
	}

	return found, nil
}

func (r *fakeItineraryRepo) ListByCity(_ context.Context, cityID bson.ObjectID) ([]model.Itinerary, error) {
	found := []model.Itinerary{}
	for _, detail := range r.details {
		if detail.City.ID == cityID {
			found = append(found, model.Itinerary{
				ID:         detail.ID,
				Title:      detail.Title,
				Img:        detail.Img,
				Rating:     detail.Rating,
				Duration:   detail.Duration,
				Price:      detail.Price,
				Hashtags:   detail.Hashtags,
				CityID:     detail.City.ID,
				Activities: detail.Activities,
			})
		}
	}

	return found, nil
}

// fakeCityRepo serves a fixed set of cities.
type fakeCityRepo struct {
	cities []model.City
}

func (r *fakeCityRepo) ListCities(_ context.Context) ([]model.City, error) {
	return r.cities, nil
}

func (r *fakeCityRepo) GetCity(_ context.Context, id string) (*model.City, error) {
	for _, city := range r.cities {
		if city.ID.Hex() == id {
			clone := city
			return &clone, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func testItinerary(title string, city model.City) model.ItineraryDetail {
	return model.ItineraryDetail{
		ID:       bson.NewObjectID(),
		Title:    title,
		Img:      "https://img.example.com/" + title + ".jpg",
		Rating:   4,
		Duration: 2.5,
		Price:    "$$",
		Hashtags: []string{"#walking"},
		City:     city,
		Activities: []model.Activity{
			{Title: "First stop", Description: "Where the tour starts"},
		},
	}
}

func testCity(name string) model.City {
	return model.City{
		ID:      bson.NewObjectID(),
		Name:    name,
		Country: "Wherever",
		Img:     "https://img.example.com/" + name + ".jpg",
	}
}

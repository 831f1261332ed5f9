package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mrodriguezdev/mytineraries-api/internal/model"
	"github.com/mrodriguezdev/mytineraries-api/internal/repository"
)

// UserUsecase defines the profile read and the favorites state machine. Both
// mutations target the already-authenticated user, never a client-supplied id.
type UserUsecase interface {
	Profile(ctx context.Context, userID string) (*model.User, []model.ItineraryDetail, error)
	AddFavorite(ctx context.Context, user *model.User, itineraryID string) (*model.User, []model.ItineraryDetail, error)
	RemoveFavorite(ctx context.Context, user *model.User, itineraryID string) (*model.User, []model.ItineraryDetail, error)
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyFavorited   = errors.New("itinerary is already favorited")
	ErrNotFavorited       = errors.New("itinerary is not favorited")
	ErrInvalidItineraryID = errors.New("invalid itinerary id")
)

type userUsecase struct {
	userRepo      repository.UserRepository
	itineraryRepo repository.ItineraryRepository
}

func NewUserUsecase(
	userRepo repository.UserRepository,
	itineraryRepo repository.ItineraryRepository,
) UserUsecase {
	return &userUsecase{
		userRepo:      userRepo,
		itineraryRepo: itineraryRepo,
	}
}

// Profile returns the user with their favorites dereferenced: each favorite
// itinerary carries its full city document.
func (u *userUsecase) Profile(ctx context.Context, userID string) (*model.User, []model.ItineraryDetail, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrUserNotFound
		}

		return nil, nil, err
	}

	details, err := u.itineraryRepo.ListByIDs(ctx, user.FavoriteItineraries)
	if err != nil {
		return nil, nil, err
	}

	return user, orderByFavorites(user.FavoriteItineraries, details), nil
}

// AddFavorite appends the itinerary to the user's favorites. Adding an
// itinerary that is already present is a conflict and changes nothing.
// On success the persisted state is re-read with favorites dereferenced.
func (u *userUsecase) AddFavorite(ctx context.Context, user *model.User, itineraryID string) (*model.User, []model.ItineraryDetail, error) {
	objectID, err := bson.ObjectIDFromHex(itineraryID)
	if err != nil {
		return nil, nil, ErrInvalidItineraryID
	}

	if user.HasFavorite(objectID) {
		return nil, nil, ErrAlreadyFavorited
	}

	if err := u.userRepo.AddFavorite(ctx, user.ID.Hex(), objectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrUserNotFound
		}

		return nil, nil, err
	}

	return u.Profile(ctx, user.ID.Hex())
}

// RemoveFavorite filters the itinerary out of the user's favorites. Removing
// an itinerary that is not present is a not-found and changes nothing.
// On success the persisted state is re-read with favorites dereferenced.
func (u *userUsecase) RemoveFavorite(ctx context.Context, user *model.User, itineraryID string) (*model.User, []model.ItineraryDetail, error) {
	objectID, err := bson.ObjectIDFromHex(itineraryID)
	if err != nil {
		return nil, nil, ErrInvalidItineraryID
	}

	if !user.HasFavorite(objectID) {
		return nil, nil, ErrNotFavorited
	}

	if err := u.userRepo.RemoveFavorite(ctx, user.ID.Hex(), objectID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrUserNotFound
		}

		return nil, nil, err
	}

	return u.Profile(ctx, user.ID.Hex())
}

// orderByFavorites puts the dereferenced itineraries back into the order of
// the user's favorites sequence. Favorites that resolve to no itinerary are
// dropped from the projection.
func orderByFavorites(favorites []bson.ObjectID, details []model.ItineraryDetail) []model.ItineraryDetail {
	byID := make(map[string]model.ItineraryDetail, len(details))
	for _, detail := range details {
		byID[detail.ID.Hex()] = detail
	}

	ordered := make([]model.ItineraryDetail, 0, len(details))
	for _, id := range favorites {
		if detail, ok := byID[id.Hex()]; ok {
			ordered = append(ordered, detail)
		}
	}

	return ordered
}

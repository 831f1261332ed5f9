package payload

import (
	"github.com/mrodriguezdev/mytineraries-api/internal/model"
)

// FavoriteItinerary is an itinerary projection with the city reference
// substituted by the full city object.
type FavoriteItinerary struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Img        string           `json:"img"`
	Rating     int              `json:"rating"`
	Duration   float64          `json:"duration"`
	Price      string           `json:"price"`
	Hashtags   []string         `json:"hashtags"`
	City       model.City       `json:"city"`
	Activities []model.Activity `json:"activities"`
}

// ProfileResponse is the public user projection returned by the profile and
// favorites endpoints. The password hash never appears here.
type ProfileResponse struct {
	ID                  string              `json:"id"`
	UserName            string              `json:"userName"`
	Email               string              `json:"email"`
	FavoriteItineraries []FavoriteItinerary `json:"favoriteItineraries"`
}

// NewProfileResponse builds the enriched projection from a user and their
// dereferenced favorites.
func NewProfileResponse(user *model.User, favorites []model.ItineraryDetail) ProfileResponse {
	items := make([]FavoriteItinerary, 0, len(favorites))
	for _, it := range favorites {
		items = append(items, FavoriteItinerary{
			ID:         it.ID.Hex(),
			Title:      it.Title,
			Img:        it.Img,
			Rating:     it.Rating,
			Duration:   it.Duration,
			Price:      it.Price,
			Hashtags:   it.Hashtags,
			City:       it.City,
			Activities: it.Activities,
		})
	}

	return ProfileResponse{
		ID:                  user.ID.Hex(),
		UserName:            user.Name,
		Email:               user.Email,
		FavoriteItineraries: items,
	}
}

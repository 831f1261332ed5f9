package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered user and their favorite itineraries.
type User struct {
	ID                  bson.ObjectID   `bson:"_id,omitempty"`
	Name                string          `bson:"name"`
	Email               string          `bson:"email"`
	PasswordHash        string          `bson:"password_hash"`
	FavoriteItineraries []bson.ObjectID `bson:"favorite_itineraries"`
	CreatedAt           time.Time       `bson:"created_at"`
	UpdatedAt           time.Time       `bson:"updated_at"`
}

// HasFavorite reports whether the itinerary id is already in the user's
// favorites. Comparison is by canonical hex form.
func (u *User) HasFavorite(itineraryID bson.ObjectID) bool {
	for _, id := range u.FavoriteItineraries {
		if id.Hex() == itineraryID.Hex() {
			return true
		}
	}
	return false
}

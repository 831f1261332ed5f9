package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// City is a destination that itineraries belong to.
type City struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string        `bson:"name"          json:"name"`
	Country string        `bson:"country"       json:"country"`
	Img     string        `bson:"img"           json:"img"`
}

// Activity is a single stop embedded in an itinerary.
type Activity struct {
	Title       string `bson:"title"       json:"title"`
	Description string `bson:"description" json:"description"`
}

// Itinerary is a curated tour within a city. The city field holds a
// reference to the cities collection.
type Itinerary struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Title      string        `bson:"title"`
	Img        string        `bson:"img"`
	Rating     int           `bson:"rating"`
	Duration   float64       `bson:"duration"`
	Price      string        `bson:"price"`
	Hashtags   []string      `bson:"hashtags"`
	CityID     bson.ObjectID `bson:"city"`
	Activities []Activity    `bson:"activities"`
}

// ItineraryDetail is an itinerary with its city reference resolved to the
// full city document. Produced by the dereferencing read after favorites
// mutations and on profile reads.
type ItineraryDetail struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Title      string        `bson:"title"`
	Img        string        `bson:"img"`
	Rating     int           `bson:"rating"`
	Duration   float64       `bson:"duration"`
	Price      string        `bson:"price"`
	Hashtags   []string      `bson:"hashtags"`
	City       City          `bson:"city"`
	Activities []Activity    `bson:"activities"`
}

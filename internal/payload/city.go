package payload

import (
	"github.com/mrodriguezdev/mytineraries-api/internal/model"
)

// ItinerarySummary is the itinerary projection returned by the city listing,
// with the city kept as a reference id.
type ItinerarySummary struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Img        string           `json:"img"`
	Rating     int              `json:"rating"`
	Duration   float64          `json:"duration"`
	Price      string           `json:"price"`
	Hashtags   []string         `json:"hashtags"`
	City       string           `json:"city"`
	Activities []model.Activity `json:"activities"`
}

// NewItinerarySummaries converts itineraries to their listing projection.
func NewItinerarySummaries(itineraries []model.Itinerary) []ItinerarySummary {
	summaries := make([]ItinerarySummary, 0, len(itineraries))
	for _, it := range itineraries {
		summaries = append(summaries, ItinerarySummary{
			ID:         it.ID.Hex(),
			Title:      it.Title,
			Img:        it.Img,
			Rating:     it.Rating,
			Duration:   it.Duration,
			Price:      it.Price,
			Hashtags:   it.Hashtags,
			City:       it.CityID.Hex(),
			Activities: it.Activities,
		})
	}

	return summaries
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mrodriguezdev/mytineraries-api/internal/model"
)

// ItineraryRepository defines the interface for itinerary-related database
// operations. The service only ever reads itineraries.
type ItineraryRepository interface {
	ListByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.ItineraryDetail, error)
	ListByCity(ctx context.Context, cityID bson.ObjectID) ([]model.Itinerary, error)
}

const itineraryCollection = "itineraries"

type itineraryMongoRepository struct {
	db *mongo.Database
}

func NewItineraryMongoRepository(db *mongo.Database) ItineraryRepository {
	return &itineraryMongoRepository{db: db}
}

// ListByIDs fetches the given itineraries with their city reference resolved
// to the full city document. Ids that match no itinerary are skipped; result
// order is not defined, callers reorder as needed.
func (r *itineraryMongoRepository) ListByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.ItineraryDetail, error) {
	if len(ids) == 0 {
		return []model.ItineraryDetail{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": ids}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         cityCollection,
			"localField":   "city",
			"foreignField": "_id",
			"as":           "city",
		}}},
		{{Key: "$unwind", Value: "$city"}},
	}

	cursor, err := r.db.Collection(itineraryCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := []model.ItineraryDetail{}
	for cursor.Next(ctx) {
		var detail model.ItineraryDetail
		if err := cursor.Decode(&detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *itineraryMongoRepository) ListByCity(ctx context.Context, cityID bson.ObjectID) ([]model.Itinerary, error) {
	cursor, err := r.db.Collection(itineraryCollection).Find(ctx, bson.M{"city": cityID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	itineraries := []model.Itinerary{}
	for cursor.Next(ctx) {
		var itinerary model.Itinerary
		if err := cursor.Decode(&itinerary); err != nil {
			return nil, err
		}
		itineraries = append(itineraries, itinerary)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return itineraries, nil
}

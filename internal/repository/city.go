package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mrodriguezdev/mytineraries-api/internal/model"
)

// CityRepository defines the interface for city lookups.
type CityRepository interface {
	ListCities(ctx context.Context) ([]model.City, error)
	GetCity(ctx context.Context, id string) (*model.City, error)
}

const cityCollection = "cities"

type cityMongoRepository struct {
	db *mongo.Database
}

func NewCityMongoRepository(db *mongo.Database) CityRepository {
	return &cityMongoRepository{db: db}
}

func (r *cityMongoRepository) ListCities(ctx context.Context) ([]model.City, error) {
	cursor, err := r.db.Collection(cityCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cities := []model.City{}
	for cursor.Next(ctx) {
		var city model.City
		if err := cursor.Decode(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return cities, nil
}

func (r *cityMongoRepository) GetCity(ctx context.Context, id string) (*model.City, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(cityCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var city model.City
	if err := result.Decode(&city); err != nil {
		return nil, err
	}

	return &city, nil
}

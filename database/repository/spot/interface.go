// File: database/repository/spot/interface.go
package spotRepo

import (
	"context"

	"parkbay/database"
	"parkbay/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SpotRepository provides point lookups on the spots collection. Spot
// create/edit/delete flows live with the owner-facing surface, outside this
// service; the booking engine only ever reads spot records.
type SpotRepository interface {
	GetByID(ctx context.Context, spotID string) (*models.Spot, error)
	GetActiveByID(ctx context.Context, spotID string) (*models.Spot, error)
	EnsureIndexes() error
}

type mongoSpotRepo struct {
	coll *mongo.Collection
}

// NewMongoSpotRepo constructs a new MongoDB SpotRepository.
func NewMongoSpotRepo() SpotRepository {
	return &mongoSpotRepo{
		coll: database.DB().Collection("spots"),
	}
}

package spotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkbay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a spot document by ID regardless of status.
func (r *mongoSpotRepo) GetByID(ctx context.Context, spotID string) (*models.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var spot models.Spot
	filter := bson.M{"id": spotID}
	if err := r.coll.FindOne(ctx, filter).Decode(&spot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching spot with id %s: %w", spotID, err)
	}
	return &spot, nil
}

// GetActiveByID retrieves a spot that is still taking bookings. Soft-deleted
// spots are reported as not found.
func (r *mongoSpotRepo) GetActiveByID(ctx context.Context, spotID string) (*models.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var spot models.Spot
	filter := bson.M{"id": spotID, "status": models.SpotStatusActive}
	if err := r.coll.FindOne(ctx, filter).Decode(&spot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching spot with id %s: %w", spotID, err)
	}
	return &spot, nil
}

package propertyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentwise/database"
	"rentwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

func NewMongoPropertyRepo() PropertyRepository {
	return &MongoPropertyRepo{coll: database.DB().Collection("properties")}
}

func (r *MongoPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch property with id %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPropertyRepo) SetStatus(ctx context.Context, id string, from, to models.PropertyStatus) error {
	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set property %s status to %s: %w", id, to, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrConflict
	}
	return nil
}

package leaseRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentwise/database"
	"rentwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLeaseRepo implements LeaseRepository using MongoDB.
type MongoLeaseRepo struct {
	coll *mongo.Collection
}

// NewMongoLeaseRepo creates a new instance of LeaseRepository using MongoDB.
func NewMongoLeaseRepo() LeaseRepository {
	repo := &MongoLeaseRepo{coll: database.DB().Collection("leases")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create lease indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLeaseRepo) Create(ctx context.Context, lease *models.Lease) error {
	if _, err := r.coll.InsertOne(ctx, lease); err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}
	return nil
}

func (r *MongoLeaseRepo) GetByID(ctx context.Context, id string) (*models.Lease, error) {
	var lease models.Lease
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lease); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lease with id %s: %w", id, err)
	}
	return &lease, nil
}

func (r *MongoLeaseRepo) Update(ctx context.Context, lease *models.Lease) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": lease.ID}, lease)
	if err != nil {
		return fmt.Errorf("failed to update lease with id %s: %w", lease.ID, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoLeaseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete lease with id %s: %w", id, err)
	}
	return nil
}

func (r *MongoLeaseRepo) GetActiveByLandlord(ctx context.Context, landlordID string) ([]models.Lease, error) {
	filter := bson.M{"landlordId": landlordID, "status": models.LeaseActive}
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve leases for landlord %s: %w", landlordID, err)
	}
	defer cursor.Close(ctx)

	leases := []models.Lease{}
	if err := cursor.All(ctx, &leases); err != nil {
		return nil, fmt.Errorf("failed to decode leases: %w", err)
	}
	return leases, nil
}

func (r *MongoLeaseRepo) GetOpenByProperty(ctx context.Context, propertyID string) (*models.Lease, error) {
	filter := bson.M{
		"propertyId": propertyID,
		"status":     bson.M{"$in": bson.A{models.LeaseActive, models.LeasePendingEnd}},
	}
	var lease models.Lease
	if err := r.coll.FindOne(ctx, filter).Decode(&lease); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch open lease for property %s: %w", propertyID, err)
	}
	return &lease, nil
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

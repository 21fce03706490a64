package tenancyRepo

import (
	"context"
	"fmt"
	"time"

	"rentwise/database"
	"rentwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// terminalStatuses are left untouched by the cascade.
var terminalStatuses = bson.A{models.TenancyRecordCompleted, models.TenancyRecordCancelled, models.TenancyRecordRejected}

// MongoTenancyRepo implements TenancyRepository over the bookings and applications collections.
type MongoTenancyRepo struct {
	bookingColl     *mongo.Collection
	applicationColl *mongo.Collection
}

func NewMongoTenancyRepo() TenancyRepository {
	db := database.DB()
	return &MongoTenancyRepo{
		bookingColl:     db.Collection("bookings"),
		applicationColl: db.Collection("applications"),
	}
}

func (r *MongoTenancyRepo) CompleteForTenant(ctx context.Context, tenantID, propertyID string) (int64, error) {
	filter := bson.M{
		"tenantId":   tenantID,
		"propertyId": propertyID,
		"status":     bson.M{"$nin": terminalStatuses},
	}
	update := bson.M{"$set": bson.M{"status": models.TenancyRecordCompleted, "updatedAt": time.Now()}}

	var total int64
	for _, coll := range []*mongo.Collection{r.bookingColl, r.applicationColl} {
		res, err := coll.UpdateMany(ctx, filter, update)
		if err != nil {
			return total, fmt.Errorf("failed to complete %s for tenant %s: %w", coll.Name(), tenantID, err)
		}
		total += res.ModifiedCount
	}
	return total, nil
}

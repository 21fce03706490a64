package notificationRepo

import (
	"context"
	"fmt"

	"rentwise/database"
	"rentwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MongoNotificationRepo struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepo() NotificationRepository {
	return &MongoNotificationRepo{coll: database.DB().Collection("notifications")}
}

func (r *MongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

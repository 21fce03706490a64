package billRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentwise/database"
	"rentwise/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBillRepo implements BillRepository using MongoDB.
type MongoBillRepo struct {
	coll *mongo.Collection
}

// NewMongoBillRepo creates a new instance of BillRepository using MongoDB.
func NewMongoBillRepo() BillRepository {
	repo := &MongoBillRepo{coll: database.DB().Collection("bills")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create bill indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBillRepo) Create(ctx context.Context, bill *models.Bill) error {
	if _, err := r.coll.InsertOne(ctx, bill); err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

func (r *MongoBillRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete bill with id %s: %w", id, err)
	}
	return nil
}

func (r *MongoBillRepo) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	var bill models.Bill
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&bill); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch bill with id %s: %w", id, err)
	}
	return &bill, nil
}

func (r *MongoBillRepo) UpdateStatus(
	ctx context.Context,
	id string,
	from, to models.BillStatus,
	paidAt *time.Time,
	amountPaid *decimal.Decimal,
) error {
	set := bson.M{"status": to, "updatedAt": time.Now()}
	if paidAt != nil {
		set["paidAt"] = *paidAt
	}
	if amountPaid != nil {
		set["amountPaid"] = *amountPaid
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "status": from}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update status of bill %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrConflict
	}
	return nil
}

func (r *MongoBillRepo) ListByLease(ctx context.Context, leaseID string) ([]models.Bill, error) {
	return r.list(ctx, bson.M{"leaseId": leaseID})
}

func (r *MongoBillRepo) ListByLandlord(ctx context.Context, landlordID string) ([]models.Bill, error) {
	return r.list(ctx, bson.M{"landlordId": landlordID})
}

func (r *MongoBillRepo) list(ctx context.Context, filter bson.M) ([]models.Bill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bills: %w", err)
	}
	defer cursor.Close(ctx)

	bills := []models.Bill{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, fmt.Errorf("failed to decode bills: %w", err)
	}
	return bills, nil
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

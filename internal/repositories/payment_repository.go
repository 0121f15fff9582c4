package repositories

import (
	"context"
	"time"

	"github.com/wonderbd/tourism-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository defines the interface for payment bookkeeping
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	UpdateStatus(ctx context.Context, paymentIntentID string, status string) (*models.UpdateOutcome, error)
}

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{collection: db.Collection("payments")}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	payment.Status = models.PaymentStatusPending
	payment.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentIntentID string, status string) (*models.UpdateOutcome, error) {
	filter := bson.M{"paymentIntentId": paymentIntentID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	return &models.UpdateOutcome{
		Matched:  result.MatchedCount > 0,
		Modified: result.ModifiedCount > 0,
	}, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/wonderbd/tourism-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateOutcome, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{collection: db.Collection("bookings")}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	booking.ID = primitive.NewObjectID()
	booking.Status = models.BookingStatusPending
	booking.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return booking.ID, nil
}

func (r *bookingRepository) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"touristEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateOutcome, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	return &models.UpdateOutcome{
		Matched:  result.MatchedCount > 0,
		Modified: result.ModifiedCount > 0,
	}, nil
}

// TotalRevenue sums the price field across all bookings, returning 0 when
// the collection is empty.
func (r *bookingRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

package repositories

import (
	"context"

	"github.com/wonderbd/tourism-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TourGuideRepository defines the interface for tour guide operations
type TourGuideRepository interface {
	CreateTourGuide(ctx context.Context, guide *models.TourGuide) error
	GetAllTourGuides(ctx context.Context) ([]models.TourGuide, error)
	GetTourGuideByID(ctx context.Context, id primitive.ObjectID) (*models.TourGuide, error)
	SampleTourGuides(ctx context.Context, size int) ([]models.TourGuide, error)
	CountTourGuides(ctx context.Context) (int64, error)
}

type tourGuideRepository struct {
	collection *mongo.Collection
}

func NewTourGuideRepository(db *mongo.Database) TourGuideRepository {
	return &tourGuideRepository{collection: db.Collection("tourGuides")}
}

func (r *tourGuideRepository) CreateTourGuide(ctx context.Context, guide *models.TourGuide) error {
	guide.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, guide)
	return err
}

func (r *tourGuideRepository) GetAllTourGuides(ctx context.Context) ([]models.TourGuide, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	guides := []models.TourGuide{}
	if err = cursor.All(ctx, &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *tourGuideRepository) GetTourGuideByID(ctx context.Context, id primitive.ObjectID) (*models.TourGuide, error) {
	var guide models.TourGuide
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&guide)
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *tourGuideRepository) SampleTourGuides(ctx context.Context, size int) ([]models.TourGuide, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	guides := []models.TourGuide{}
	if err = cursor.All(ctx, &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *tourGuideRepository) CountTourGuides(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

package repositories

import (
	"context"
	"time"

	"github.com/wonderbd/tourism-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationRepository defines the interface for guide application operations
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application *models.GuideApplication) error
	GetAllApplications(ctx context.Context) ([]models.GuideApplication, error)
	GetApplicationByID(ctx context.Context, id primitive.ObjectID) (*models.GuideApplication, error)
	DeleteApplication(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type applicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) ApplicationRepository {
	return &applicationRepository{collection: db.Collection("guideApplications")}
}

func (r *applicationRepository) CreateApplication(ctx context.Context, application *models.GuideApplication) error {
	application.ID = primitive.NewObjectID()
	application.Status = models.ApplicationStatusPending
	application.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, application)
	return err
}

func (r *applicationRepository) GetAllApplications(ctx context.Context) ([]models.GuideApplication, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	applications := []models.GuideApplication{}
	if err = cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) GetApplicationByID(ctx context.Context, id primitive.ObjectID) (*models.GuideApplication, error) {
	var application models.GuideApplication
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) DeleteApplication(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/wonderbd/tourism-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoryRepository defines the interface for story operations
type StoryRepository interface {
	CreateStory(ctx context.Context, story *models.Story) error
	GetAllStories(ctx context.Context) ([]models.Story, error)
	GetStoriesByEmail(ctx context.Context, email string) ([]models.Story, error)
	SampleStories(ctx context.Context, role models.Role, size int) ([]models.Story, error)
	RemoveImage(ctx context.Context, id primitive.ObjectID, image string) (*models.Story, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, title, text string) (*models.Story, error)
	DeleteStory(ctx context.Context, id primitive.ObjectID, email string) (int64, error)
	CountStories(ctx context.Context) (int64, error)
}

type storyRepository struct {
	collection *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) StoryRepository {
	return &storyRepository{collection: db.Collection("stories")}
}

func (r *storyRepository) CreateStory(ctx context.Context, story *models.Story) error {
	story.ID = primitive.NewObjectID()
	story.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, story)
	return err
}

func (r *storyRepository) GetAllStories(ctx context.Context) ([]models.Story, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []models.Story{}
	if err = cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) GetStoriesByEmail(ctx context.Context, email string) ([]models.Story, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []models.Story{}
	if err = cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) SampleStories(ctx context.Context, role models.Role, size int) ([]models.Story, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userRole": role}}},
		{{Key: "$sample", Value: bson.M{"size": size}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []models.Story{}
	if err = cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) RemoveImage(ctx context.Context, id primitive.ObjectID, image string) (*models.Story, error) {
	update := bson.M{"$pull": bson.M{"images": image}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var story models.Story
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&story)
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, title, text string) (*models.Story, error) {
	update := bson.M{"$set": bson.M{"title": title, "text": text, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var story models.Story
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&story)
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) DeleteStory(ctx context.Context, id primitive.ObjectID, email string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *storyRepository) CountStories(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

package repositories

import (
	"context"

	"github.com/wonderbd/tourism-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PackageRepository defines the interface for tour package reads
type PackageRepository interface {
	GetAllPackages(ctx context.Context) ([]models.Package, error)
	GetPackageByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error)
	CountPackages(ctx context.Context) (int64, error)
}

type packageRepository struct {
	collection *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) PackageRepository {
	return &packageRepository{collection: db.Collection("packages")}
}

func (r *packageRepository) GetAllPackages(ctx context.Context) ([]models.Package, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	packages := []models.Package{}
	if err = cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) GetPackageByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error) {
	var pkg models.Package
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) CountPackages(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

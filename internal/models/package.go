package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Package represents a tour package stored in the "packages" collection
type Package struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Location    string             `json:"location" bson:"location"`
	Price       float64            `json:"price" bson:"price"`
	Duration    string             `json:"duration" bson:"duration"`
	Image       string             `json:"image" bson:"image"`
	Description string             `json:"description" bson:"description"`
}

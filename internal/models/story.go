package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Story represents a user post stored in the "stories" collection
type Story struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	Text       string             `json:"text" bson:"text"`
	UserImage  string             `json:"userImage" bson:"userImage"`
	UserName   string             `json:"userName" bson:"userName"`
	Email      string             `json:"email" bson:"email"`
	UserRole   Role               `json:"userRole" bson:"userRole"`
	Images     []string           `json:"images" bson:"images"`
	ShareCount int                `json:"shareCount" bson:"shareCount"`
	ReactCount int                `json:"reactCount" bson:"reactCount"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// AddStoryRequest defines the request body for /stories/add
type AddStoryRequest struct {
	Title      string              `json:"title" validate:"required"`
	Text       string              `json:"text" validate:"required"`
	UserImage  string              `json:"userImage" validate:"required"`
	UserName   string              `json:"userName" validate:"required"`
	Email      string              `json:"email" validate:"required,email"`
	UserRole   Role                `json:"userRole" validate:"required"`
	Images     FlexibleStringSlice `json:"images"`
	ShareCount FlexibleInt         `json:"shareCount"`
	ReactCount FlexibleInt         `json:"reactCount"`
}

// RemoveImageRequest defines the request body for /stories/remove-image
type RemoveImageRequest struct {
	StoryID string `json:"storyId" validate:"required"`
	Image   string `json:"image" validate:"required"`
}

// UpdateStoryRequest defines the request body for /stories/update
type UpdateStoryRequest struct {
	StoryID string `json:"storyId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

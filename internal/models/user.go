package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a platform user stored in the "users" collection
type User struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FullName         string             `json:"fullName" bson:"fullName"`
	Email            string             `json:"email" bson:"email"`
	PhotoURL         string             `json:"photoURL" bson:"photoURL"`
	UserRole         Role               `json:"userRole" bson:"userRole,omitempty"`
	RegistrationDate time.Time          `json:"registrationDate" bson:"registrationDate"`
}

// DefaultPhotoURL is stored when registration omits a photo
const DefaultPhotoURL = "default-url"

// RegisterRequest defines the request body for /register
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	PhotoURL  string `json:"photoURL"`
}

// UpdateUserRequest defines the request body for /update-user
type UpdateUserRequest struct {
	UserID    string `json:"userId" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	PhotoURL  string `json:"photoURL" validate:"required"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a tour booking stored in the "bookings" collection
type Booking struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PackageID    string             `json:"packageId" bson:"packageId"`
	PackageName  string             `json:"packageName" bson:"packageName"`
	TouristName  string             `json:"touristName" bson:"touristName"`
	TouristEmail string             `json:"touristEmail" bson:"touristEmail"`
	TouristImage string             `json:"touristImage" bson:"touristImage"`
	Price        float64            `json:"price" bson:"price"`
	TourDate     string             `json:"tourDate" bson:"tourDate"`
	GuideName    string             `json:"guideName" bson:"guideName"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// BookingStatusPending is the status stamped on newly created bookings
const BookingStatusPending = "pending"

// CreateBookingRequest defines the request body for POST /bookings
type CreateBookingRequest struct {
	PackageID    string  `json:"packageId" validate:"required"`
	PackageName  string  `json:"packageName" validate:"required"`
	TouristName  string  `json:"touristName" validate:"required"`
	TouristEmail string  `json:"touristEmail" validate:"required,email"`
	TouristImage string  `json:"touristImage"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	TourDate     string  `json:"tourDate" validate:"required"`
	GuideName    string  `json:"guideName"`
}

// UpdateBookingStatusRequest defines the request body for PATCH /bookings/:id
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOutcome is the normalized response body for status-update endpoints,
// replacing the driver's raw update result.
type UpdateOutcome struct {
	Matched  bool `json:"matched"`
	Modified bool `json:"modified"`
}

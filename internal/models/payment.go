package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment tracks a payment intent stored in the "payments" collection
type Payment struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PaymentIntentID string             `json:"paymentIntentId" bson:"paymentIntentId"`
	BookingID       string             `json:"bookingId" bson:"bookingId"`
	Amount          float64            `json:"amount" bson:"amount"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// PaymentStatusPending is the status stamped on newly created payments
const PaymentStatusPending = "pending"

// CreatePaymentIntentRequest defines the request body for /create-payment-intent
type CreatePaymentIntentRequest struct {
	Amount    float64 `json:"amount"`
	BookingID string  `json:"bookingId" validate:"required"`
}

// UpdatePaymentStatusRequest defines the request body for /payments/update
type UpdatePaymentStatusRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	Status          string `json:"status" validate:"required"`
}

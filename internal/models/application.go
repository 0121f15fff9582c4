package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuideApplication represents a pending tour-guide application stored in
// the "guideApplications" collection. Applications are deleted once decided.
type GuideApplication struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title"`
	Reason     string             `json:"reason" bson:"reason"`
	CVLink     string             `json:"cvLink" bson:"cvLink"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	UserRole   Role               `json:"userRole" bson:"userRole"`
	Image      string             `json:"image" bson:"image"`
	Age        int                `json:"age" bson:"age"`
	Experience string             `json:"experience" bson:"experience"`
	Speciality string             `json:"speciality" bson:"speciality"`
	Languages  []string           `json:"languages" bson:"languages"`
	Gender     string             `json:"gender" bson:"gender"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// ApplicationStatusPending is the status stamped on submitted applications
const ApplicationStatusPending = "pending"

// SubmitApplicationRequest defines the request body for /guideapplication
type SubmitApplicationRequest struct {
	Title      string              `json:"title" validate:"required"`
	Reason     string              `json:"reason" validate:"required"`
	CVLink     string              `json:"cvLink" validate:"required"`
	Name       string              `json:"name" validate:"required"`
	Email      string              `json:"email" validate:"required,email"`
	UserRole   Role                `json:"userRole"`
	Image      string              `json:"image"`
	Age        FlexibleInt         `json:"age"`
	Experience string              `json:"experience"`
	Speciality string              `json:"speciality"`
	Languages  FlexibleStringSlice `json:"languages"`
	Gender     string              `json:"gender"`
}

// ManageApplicationRequest defines the request body for /manageApplication
type ManageApplicationRequest struct {
	ApplicationID string `json:"applicationId" validate:"required"`
	Action        string `json:"action" validate:"required,oneof=accept reject"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TourGuide represents an accepted guide stored in the "tourGuides"
// collection. Guides are only created through the application workflow.
type TourGuide struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	GuideID      string             `json:"guideId" bson:"guideId"`
	Name         string             `json:"name" bson:"name"`
	Age          int                `json:"age" bson:"age"`
	Gender       string             `json:"gender" bson:"gender"`
	Languages    []string           `json:"languages" bson:"languages"`
	Experience   string             `json:"experience" bson:"experience"`
	Speciality   string             `json:"speciality" bson:"speciality"`
	Rating       float64            `json:"rating" bson:"rating"`
	Availability string             `json:"availability" bson:"availability"`
	Image        string             `json:"image" bson:"image"`
	Email        string             `json:"email" bson:"email"`
	UserRole     Role               `json:"userRole" bson:"userRole"`
}

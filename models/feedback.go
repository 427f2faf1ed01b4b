package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID primitive.ObjectID `json:"patientId" bson:"patientId"`
	DoctorID  primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type CreateFeedbackRequest struct {
	PatientName        string `json:"patientName" binding:"required"`
	PatientPhoneNumber string `json:"patientPhoneNumber" binding:"required"`
	DoctorName         string `json:"doctorName" binding:"required"`
	DoctorEmail        string `json:"doctorEmail" binding:"required,email"`
	Rating             int    `json:"rating" binding:"required,min=1,max=5"`
	Comment            string `json:"comment"`
}

// UpdateFeedbackRequest carries the requester's phone number so the service
// can check ownership before merging the partial payload.
type UpdateFeedbackRequest struct {
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment     *string `json:"comment"`
}

type DeleteFeedbackRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

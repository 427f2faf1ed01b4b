package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment keeps references to both parties plus denormalized name and
// contact copies taken at booking time. The copies are not rewritten when the
// patient or doctor record is later edited.
type Appointment struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID          primitive.ObjectID `json:"patientId" bson:"patientId"`
	DoctorID           primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	PatientName        string             `json:"patientName" bson:"patientName"`
	PatientPhoneNumber string             `json:"patientPhoneNumber" bson:"patientPhoneNumber"`
	DoctorName         string             `json:"doctorName" bson:"doctorName"`
	DoctorEmail        string             `json:"doctorEmail" bson:"doctorEmail"`
	AppointmentDate    time.Time          `json:"appointmentDate" bson:"appointmentDate"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateAppointmentRequest struct {
	PatientName        string    `json:"patientName" binding:"required"`
	PatientPhoneNumber string    `json:"patientPhoneNumber" binding:"required"`
	DoctorName         string    `json:"doctorName" binding:"required"`
	DoctorEmail        string    `json:"doctorEmail" binding:"required,email"`
	AppointmentDate    time.Time `json:"appointmentDate" binding:"required"`
}

type UpdateAppointmentRequest struct {
	PatientName        *string    `json:"patientName" binding:"omitempty,min=1"`
	PatientPhoneNumber *string    `json:"patientPhoneNumber" binding:"omitempty,min=1"`
	DoctorName         *string    `json:"doctorName" binding:"omitempty,min=1"`
	DoctorEmail        *string    `json:"doctorEmail" binding:"omitempty,email"`
	AppointmentDate    *time.Time `json:"appointmentDate"`
}

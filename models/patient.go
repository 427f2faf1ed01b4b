package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	PhoneNumber      string             `json:"phoneNumber" bson:"phoneNumber"`
	Password         string             `json:"-" bson:"password"`
	InsuranceDetails string             `json:"insuranceDetails,omitempty" bson:"insuranceDetails,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type RegisterPatientRequest struct {
	Name             string `json:"name" binding:"required"`
	PhoneNumber      string `json:"phoneNumber" binding:"required"`
	Password         string `json:"password" binding:"required,min=6"`
	InsuranceDetails string `json:"insuranceDetails"`
}

type LoginPatientRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UpdatePatientRequest carries a partial profile; nil fields are left alone.
type UpdatePatientRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=1"`
	PhoneNumber      *string `json:"phoneNumber" binding:"omitempty,min=1"`
	Password         *string `json:"password" binding:"omitempty,min=6"`
	InsuranceDetails *string `json:"insuranceDetails"`
}

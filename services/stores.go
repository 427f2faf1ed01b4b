package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/utils"
)

// Store interfaces for the identity, appointment and feedback collections.
// Lookups return (nil, nil) when no document matches; only real store
// failures come back as errors.

type PatientStore interface {
	Insert(ctx context.Context, patient *models.Patient) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*models.Patient, error)
	FindByNameAndPhone(ctx context.Context, name, phoneNumber string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	Save(ctx context.Context, patient *models.Patient) error
	DeleteByPhone(ctx context.Context, phoneNumber string) (int64, error)
}

type DoctorStore interface {
	Insert(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByNameAndEmail(ctx context.Context, name, email string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error)
	Save(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type AppointmentStore interface {
	Insert(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	Save(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type FeedbackStore interface {
	Insert(ctx context.Context, feedback *models.Feedback) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error)
	FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Feedback, error)
	FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Feedback, error)
	Save(ctx context.Context, feedback *models.Feedback) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// OTPStore is a keyed code store with expiry. Get returns "" when no code is
// stored for the email or the entry has expired.
type OTPStore interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// storeErr passes typed application errors through (a store may report a
// duplicate-key conflict itself) and wraps anything else as internal.
func storeErr(err error, message string) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return utils.InternalError(message, err)
}

package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"HospitalConnect/models"
)

type AppointmentMongo struct {
	coll *mongo.Collection
}

func NewAppointmentMongo(coll *mongo.Collection) *AppointmentMongo {
	return &AppointmentMongo{coll: coll}
}

func (r *AppointmentMongo) Insert(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, appointment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *AppointmentMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentMongo) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongo) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongo) FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"appointmentDate": bson.M{"$gte": from, "$lt": to}})
}

func (r *AppointmentMongo) Save(ctx context.Context, appointment *models.Appointment) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": appointment.ID}, appointment)
	return err
}

func (r *AppointmentMongo) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *AppointmentMongo) findMany(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"HospitalConnect/models"
	"HospitalConnect/utils"
)

type PatientMongo struct {
	coll *mongo.Collection
}

func NewPatientMongo(coll *mongo.Collection) *PatientMongo {
	return &PatientMongo{coll: coll}
}

func (r *PatientMongo) Insert(ctx context.Context, patient *models.Patient) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, utils.ConflictError("phone number already registered")
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *PatientMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PatientMongo) FindByPhone(ctx context.Context, phoneNumber string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"phoneNumber": phoneNumber})
}

func (r *PatientMongo) FindByNameAndPhone(ctx context.Context, name, phoneNumber string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"name": name, "phoneNumber": phoneNumber})
}

func (r *PatientMongo) FindAll(ctx context.Context) ([]models.Patient, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientMongo) Save(ctx context.Context, patient *models.Patient) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": patient.ID}, patient)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ConflictError("phone number already registered")
	}
	return err
}

func (r *PatientMongo) DeleteByPhone(ctx context.Context, phoneNumber string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"phoneNumber": phoneNumber})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PatientMongo) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := r.coll.FindOne(ctx, filter).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

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

type DoctorMongo struct {
	coll *mongo.Collection
}

func NewDoctorMongo(coll *mongo.Collection) *DoctorMongo {
	return &DoctorMongo{coll: coll}
}

func (r *DoctorMongo) Insert(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, utils.ConflictError("email already registered")
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *DoctorMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *DoctorMongo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *DoctorMongo) FindByNameAndEmail(ctx context.Context, name, email string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"name": name, "email": email})
}

func (r *DoctorMongo) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *DoctorMongo) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	return r.findMany(ctx, bson.M{"specialty": specialty})
}

func (r *DoctorMongo) Save(ctx context.Context, doctor *models.Doctor) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doctor.ID}, doctor)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ConflictError("email already registered")
	}
	return err
}

func (r *DoctorMongo) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *DoctorMongo) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.coll.FindOne(ctx, filter).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorMongo) findMany(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"HospitalConnect/models"
)

type FeedbackMongo struct {
	coll *mongo.Collection
}

func NewFeedbackMongo(coll *mongo.Collection) *FeedbackMongo {
	return &FeedbackMongo{coll: coll}
}

func (r *FeedbackMongo) Insert(ctx context.Context, feedback *models.Feedback) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *FeedbackMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackMongo) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Feedback, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *FeedbackMongo) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Feedback, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *FeedbackMongo) Save(ctx context.Context, feedback *models.Feedback) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": feedback.ID}, feedback)
	return err
}

func (r *FeedbackMongo) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *FeedbackMongo) findMany(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	feedbacks := []models.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

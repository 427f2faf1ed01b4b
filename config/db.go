package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var db *mongo.Database

const (
	PatientCollection     = "patients"
	DoctorCollection      = "doctors"
	AppointmentCollection = "appointments"
	FeedbackCollection    = "feedback"
)

func ConnectDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := Env("MONGO_URI", "mongodb://localhost:27017")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error connecting to MongoDB:", err)
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Error pinging MongoDB:", err)
		return err
	}

	db = client.Database(Env("MONGO_DB", "hospital"))
	if err := ensureIndexes(ctx); err != nil {
		return err
	}
	log.Println("Connected to MongoDB")
	return nil
}

func OpenCollection(name string) *mongo.Collection {
	return db.Collection(name)
}

// Natural keys are unique at the index level so a registration race loses
// with a duplicate-key error instead of a second record.
func ensureIndexes(ctx context.Context) error {
	_, err := db.Collection(PatientCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("Error creating patient phoneNumber index:", err)
		return err
	}
	_, err = db.Collection(DoctorCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("Error creating doctor email index:", err)
		return err
	}
	return nil
}

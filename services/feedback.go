package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/utils"
)

type FeedbackService struct {
	Store    FeedbackStore
	Patients PatientStore
	Doctors  DoctorStore
}

func NewFeedbackService(store FeedbackStore, patients PatientStore, doctors DoctorStore) *FeedbackService {
	return &FeedbackService{Store: store, Patients: patients, Doctors: doctors}
}

/*
* Resolve both parties by exact name + contact
* Persist the rating and comment against their references
 */
func (s *FeedbackService) Create(ctx context.Context, req models.CreateFeedbackRequest) (*models.Feedback, error) {
	patient, err := s.Patients.FindByNameAndPhone(ctx, req.PatientName, req.PatientPhoneNumber)
	if err != nil {
		log.Println("Error resolving patient for feedback:", err)
		return nil, storeErr(err, "could not create feedback")
	}
	if patient == nil {
		return nil, utils.NotFoundError("patient not found")
	}

	doctor, err := s.Doctors.FindByNameAndEmail(ctx, req.DoctorName, req.DoctorEmail)
	if err != nil {
		log.Println("Error resolving doctor for feedback:", err)
		return nil, storeErr(err, "could not create feedback")
	}
	if doctor == nil {
		return nil, utils.NotFoundError("doctor not found")
	}

	feedback := &models.Feedback{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	id, err := s.Store.Insert(ctx, feedback)
	if err != nil {
		log.Println("Error inserting feedback:", err)
		return nil, storeErr(err, "could not create feedback")
	}
	feedback.ID = id
	return feedback, nil
}

func (s *FeedbackService) FindByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Feedback, error) {
	feedbacks, err := s.Store.FindByDoctorID(ctx, doctorID)
	if err != nil {
		log.Println("Error listing feedback by doctor:", err)
		return nil, storeErr(err, "could not list feedback")
	}
	return feedbacks, nil
}

func (s *FeedbackService) FindByPatientPhone(ctx context.Context, phoneNumber string) ([]models.Feedback, error) {
	patient, err := s.Patients.FindByPhone(ctx, phoneNumber)
	if err != nil {
		log.Println("Error resolving patient by phone:", err)
		return nil, storeErr(err, "could not list feedback")
	}
	if patient == nil {
		return nil, utils.NotFoundError("patient not found")
	}

	feedbacks, err := s.Store.FindByPatientID(ctx, patient.ID)
	if err != nil {
		log.Println("Error listing feedback by patient:", err)
		return nil, storeErr(err, "could not list feedback")
	}
	return feedbacks, nil
}

// ownedBy loads the feedback and checks the requester's phone against the
// linked patient's current phone number.
func (s *FeedbackService) ownedBy(ctx context.Context, id primitive.ObjectID, phoneNumber string) (*models.Feedback, error) {
	feedback, err := s.Store.FindByID(ctx, id)
	if err != nil {
		log.Println("Error looking up feedback:", err)
		return nil, storeErr(err, "could not fetch feedback")
	}
	if feedback == nil {
		return nil, utils.NotFoundError("feedback not found with id " + id.Hex())
	}

	patient, err := s.Patients.FindByID(ctx, feedback.PatientID)
	if err != nil {
		log.Println("Error resolving feedback owner:", err)
		return nil, storeErr(err, "could not fetch feedback")
	}
	if patient == nil || patient.PhoneNumber != phoneNumber {
		return nil, utils.ForbiddenError("access denied")
	}
	return feedback, nil
}

func (s *FeedbackService) UpdateByPhone(ctx context.Context, id primitive.ObjectID, req models.UpdateFeedbackRequest) (*models.Feedback, error) {
	feedback, err := s.ownedBy(ctx, id, req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		feedback.Rating = *req.Rating
	}
	if req.Comment != nil {
		feedback.Comment = *req.Comment
	}

	if err := s.Store.Save(ctx, feedback); err != nil {
		log.Println("Error saving feedback:", err)
		return nil, storeErr(err, "could not update feedback")
	}
	return feedback, nil
}

func (s *FeedbackService) RemoveByPhone(ctx context.Context, id primitive.ObjectID, phoneNumber string) error {
	feedback, err := s.ownedBy(ctx, id, phoneNumber)
	if err != nil {
		return err
	}

	deleted, err := s.Store.DeleteByID(ctx, feedback.ID)
	if err != nil {
		log.Println("Error deleting feedback:", err)
		return storeErr(err, "could not delete feedback")
	}
	if deleted == 0 {
		return utils.NotFoundError("feedback not found with id " + id.Hex())
	}
	return nil
}

package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"HospitalConnect/models"
	"HospitalConnect/utils"
)

type PatientService struct {
	Store PatientStore
}

func NewPatientService(store PatientStore) *PatientService {
	return &PatientService{Store: store}
}

/*
* Check the phone number is not taken
* Hash the password
* Persist the patient
 */
func (s *PatientService) Register(ctx context.Context, req models.RegisterPatientRequest) (*models.Patient, error) {
	existing, err := s.Store.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		log.Println("Error looking up patient by phone:", err)
		return nil, storeErr(err, "could not register patient")
	}
	if existing != nil {
		return nil, utils.ConflictError("phone number already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error hashing patient password:", err)
		return nil, utils.InternalError("could not register patient", err)
	}

	now := time.Now()
	patient := &models.Patient{
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		Password:         string(hash),
		InsuranceDetails: req.InsuranceDetails,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	id, err := s.Store.Insert(ctx, patient)
	if err != nil {
		log.Println("Error inserting patient:", err)
		return nil, storeErr(err, "could not register patient")
	}
	patient.ID = id
	return patient, nil
}

// Login verifies the phone/password pair and issues a token. A missing record
// and a wrong password are reported identically.
func (s *PatientService) Login(ctx context.Context, req models.LoginPatientRequest) (string, *models.Patient, error) {
	patient, err := s.Store.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		log.Println("Error looking up patient by phone:", err)
		return "", nil, storeErr(err, "could not log in")
	}
	if patient == nil {
		return "", nil, utils.UnauthorizedError("invalid phone number or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return "", nil, utils.UnauthorizedError("invalid phone number or password")
	}

	token, err := utils.GenerateToken(patient.ID.Hex(), "", patient.PhoneNumber)
	if err != nil {
		log.Println("Error generating patient token:", err)
		return "", nil, utils.InternalError("could not log in", err)
	}
	return token, patient, nil
}

func (s *PatientService) FindAll(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.Store.FindAll(ctx)
	if err != nil {
		log.Println("Error listing patients:", err)
		return nil, storeErr(err, "could not list patients")
	}
	return patients, nil
}

func (s *PatientService) FindByPhone(ctx context.Context, phoneNumber string) (*models.Patient, error) {
	patient, err := s.Store.FindByPhone(ctx, phoneNumber)
	if err != nil {
		log.Println("Error looking up patient by phone:", err)
		return nil, storeErr(err, "could not fetch patient")
	}
	if patient == nil {
		return nil, utils.NotFoundError("patient not found with phone number " + phoneNumber)
	}
	return patient, nil
}

/*
* Load by phone number
* Merge the supplied fields, re-hash a new password
* Persist the merged record
 */
func (s *PatientService) Update(ctx context.Context, phoneNumber string, req models.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = *req.PhoneNumber
	}
	if req.InsuranceDetails != nil {
		patient.InsuranceDetails = *req.InsuranceDetails
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Error hashing patient password:", err)
			return nil, utils.InternalError("could not update patient", err)
		}
		patient.Password = string(hash)
	}
	patient.UpdatedAt = time.Now()

	if err := s.Store.Save(ctx, patient); err != nil {
		log.Println("Error saving patient:", err)
		return nil, storeErr(err, "could not update patient")
	}
	return patient, nil
}

func (s *PatientService) Delete(ctx context.Context, phoneNumber string) error {
	deleted, err := s.Store.DeleteByPhone(ctx, phoneNumber)
	if err != nil {
		log.Println("Error deleting patient:", err)
		return storeErr(err, "could not delete patient")
	}
	if deleted == 0 {
		return utils.NotFoundError("patient not found with phone number " + phoneNumber)
	}
	return nil
}

package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/utils"
)

type AppointmentService struct {
	Store    AppointmentStore
	Patients PatientStore
	Doctors  DoctorStore
}

func NewAppointmentService(store AppointmentStore, patients PatientStore, doctors DoctorStore) *AppointmentService {
	return &AppointmentService{Store: store, Patients: patients, Doctors: doctors}
}

/*
* Resolve the patient by exact name + phone and the doctor by exact name + email
* Persist the appointment with both references and the denormalized copies
 */
func (s *AppointmentService) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	patient, err := s.Patients.FindByNameAndPhone(ctx, req.PatientName, req.PatientPhoneNumber)
	if err != nil {
		log.Println("Error resolving patient for appointment:", err)
		return nil, storeErr(err, "could not create appointment")
	}
	if patient == nil {
		return nil, utils.NotFoundError("patient not found with phone number " + req.PatientPhoneNumber)
	}

	doctor, err := s.Doctors.FindByNameAndEmail(ctx, req.DoctorName, req.DoctorEmail)
	if err != nil {
		log.Println("Error resolving doctor for appointment:", err)
		return nil, storeErr(err, "could not create appointment")
	}
	if doctor == nil {
		return nil, utils.NotFoundError("doctor not found with email " + req.DoctorEmail)
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:          patient.ID,
		DoctorID:           doctor.ID,
		PatientName:        patient.Name,
		PatientPhoneNumber: patient.PhoneNumber,
		DoctorName:         doctor.Name,
		DoctorEmail:        doctor.Email,
		AppointmentDate:    req.AppointmentDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	id, err := s.Store.Insert(ctx, appointment)
	if err != nil {
		log.Println("Error inserting appointment:", err)
		return nil, storeErr(err, "could not create appointment")
	}
	appointment.ID = id
	return appointment, nil
}

func (s *AppointmentService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	appointment, err := s.Store.FindByID(ctx, id)
	if err != nil {
		log.Println("Error looking up appointment:", err)
		return nil, storeErr(err, "could not fetch appointment")
	}
	if appointment == nil {
		return nil, utils.NotFoundError("appointment not found with id " + id.Hex())
	}
	return appointment, nil
}

// UpdateByID merges the supplied fields onto the stored record. Applying the
// same payload twice leaves the record in the same state.
func (s *AppointmentService) UpdateByID(ctx context.Context, id primitive.ObjectID, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appointment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PatientName != nil {
		appointment.PatientName = *req.PatientName
	}
	if req.PatientPhoneNumber != nil {
		appointment.PatientPhoneNumber = *req.PatientPhoneNumber
	}
	if req.DoctorName != nil {
		appointment.DoctorName = *req.DoctorName
	}
	if req.DoctorEmail != nil {
		appointment.DoctorEmail = *req.DoctorEmail
	}
	if req.AppointmentDate != nil {
		appointment.AppointmentDate = *req.AppointmentDate
	}
	appointment.UpdatedAt = time.Now()

	if err := s.Store.Save(ctx, appointment); err != nil {
		log.Println("Error saving appointment:", err)
		return nil, storeErr(err, "could not update appointment")
	}
	return appointment, nil
}

func (s *AppointmentService) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.Store.DeleteByID(ctx, id)
	if err != nil {
		log.Println("Error deleting appointment:", err)
		return storeErr(err, "could not delete appointment")
	}
	if deleted == 0 {
		return utils.NotFoundError("appointment not found with id " + id.Hex())
	}
	return nil
}

/*
* Resolve the patient by phone
* List every appointment referencing that patient
* An empty list is reported as not-found
 */
func (s *AppointmentService) FindByPhone(ctx context.Context, phoneNumber string) ([]models.Appointment, error) {
	patient, err := s.Patients.FindByPhone(ctx, phoneNumber)
	if err != nil {
		log.Println("Error resolving patient by phone:", err)
		return nil, storeErr(err, "could not fetch appointments")
	}
	if patient == nil {
		return nil, utils.NotFoundError("patient not found with phone number " + phoneNumber)
	}

	appointments, err := s.Store.FindByPatientID(ctx, patient.ID)
	if err != nil {
		log.Println("Error listing appointments by patient:", err)
		return nil, storeErr(err, "could not fetch appointments")
	}
	if len(appointments) == 0 {
		return nil, utils.NotFoundError("no appointments found for this patient")
	}
	return appointments, nil
}

func (s *AppointmentService) FindByDoctorEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	doctor, err := s.Doctors.FindByEmail(ctx, email)
	if err != nil {
		log.Println("Error resolving doctor by email:", err)
		return nil, storeErr(err, "could not fetch appointments")
	}
	if doctor == nil {
		return nil, utils.NotFoundError("doctor not found")
	}

	appointments, err := s.Store.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		log.Println("Error listing appointments by doctor:", err)
		return nil, storeErr(err, "could not fetch appointments")
	}
	if len(appointments) == 0 {
		return nil, utils.NotFoundError("no appointments found for this doctor")
	}
	return appointments, nil
}

// ListBetween feeds the daily reminder job.
func (s *AppointmentService) ListBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	appointments, err := s.Store.FindByDateRange(ctx, from, to)
	if err != nil {
		log.Println("Error listing appointments by date range:", err)
		return nil, storeErr(err, "could not list appointments")
	}
	return appointments, nil
}

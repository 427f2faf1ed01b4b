package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/utils"
)

// In-memory store implementations. They back the service and handler tests
// and are handy for running the API without Mongo or Redis attached.

type MemoryPatientStore struct {
	mu       sync.Mutex
	patients map[primitive.ObjectID]models.Patient
}

func NewMemoryPatientStore() *MemoryPatientStore {
	return &MemoryPatientStore{patients: make(map[primitive.ObjectID]models.Patient)}
}

func (s *MemoryPatientStore) Insert(_ context.Context, patient *models.Patient) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.PhoneNumber == patient.PhoneNumber {
			return primitive.NilObjectID, utils.ConflictError("phone number already registered")
		}
	}
	id := primitive.NewObjectID()
	patient.ID = id
	s.patients[id] = *patient
	return id, nil
}

func (s *MemoryPatientStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.patients[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemoryPatientStore) FindByPhone(_ context.Context, phoneNumber string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.PhoneNumber == phoneNumber {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemoryPatientStore) FindByNameAndPhone(_ context.Context, name, phoneNumber string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.Name == name && p.PhoneNumber == phoneNumber {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemoryPatientStore) FindAll(_ context.Context) ([]models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patients := []models.Patient{}
	for _, p := range s.patients {
		patients = append(patients, p)
	}
	return patients, nil
}

func (s *MemoryPatientStore) Save(_ context.Context, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.patients {
		if id != patient.ID && p.PhoneNumber == patient.PhoneNumber {
			return utils.ConflictError("phone number already registered")
		}
	}
	s.patients[patient.ID] = *patient
	return nil
}

func (s *MemoryPatientStore) DeleteByPhone(_ context.Context, phoneNumber string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.patients {
		if p.PhoneNumber == phoneNumber {
			delete(s.patients, id)
			return 1, nil
		}
	}
	return 0, nil
}

type MemoryDoctorStore struct {
	mu      sync.Mutex
	doctors map[primitive.ObjectID]models.Doctor
}

func NewMemoryDoctorStore() *MemoryDoctorStore {
	return &MemoryDoctorStore{doctors: make(map[primitive.ObjectID]models.Doctor)}
}

func (s *MemoryDoctorStore) Insert(_ context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.doctors {
		if d.Email == doctor.Email {
			return primitive.NilObjectID, utils.ConflictError("email already registered")
		}
	}
	id := primitive.NewObjectID()
	doctor.ID = id
	s.doctors[id] = *doctor
	return id, nil
}

func (s *MemoryDoctorStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.doctors[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (s *MemoryDoctorStore) FindByEmail(_ context.Context, email string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.doctors {
		if d.Email == email {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (s *MemoryDoctorStore) FindByNameAndEmail(_ context.Context, name, email string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.doctors {
		if d.Name == name && d.Email == email {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (s *MemoryDoctorStore) FindAll(_ context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctors := []models.Doctor{}
	for _, d := range s.doctors {
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func (s *MemoryDoctorStore) FindBySpecialty(_ context.Context, specialty string) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctors := []models.Doctor{}
	for _, d := range s.doctors {
		if d.Specialty == specialty {
			doctors = append(doctors, d)
		}
	}
	return doctors, nil
}

func (s *MemoryDoctorStore) Save(_ context.Context, doctor *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range s.doctors {
		if id != doctor.ID && d.Email == doctor.Email {
			return utils.ConflictError("email already registered")
		}
	}
	s.doctors[doctor.ID] = *doctor
	return nil
}

func (s *MemoryDoctorStore) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doctors[id]; !ok {
		return 0, nil
	}
	delete(s.doctors, id)
	return 1, nil
}

type MemoryAppointmentStore struct {
	mu           sync.Mutex
	appointments map[primitive.ObjectID]models.Appointment
}

func NewMemoryAppointmentStore() *MemoryAppointmentStore {
	return &MemoryAppointmentStore{appointments: make(map[primitive.ObjectID]models.Appointment)}
}

func (s *MemoryAppointmentStore) Insert(_ context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	appointment.ID = id
	s.appointments[id] = *appointment
	return id, nil
}

func (s *MemoryAppointmentStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.appointments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (s *MemoryAppointmentStore) FindByPatientID(_ context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointments := []models.Appointment{}
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}

func (s *MemoryAppointmentStore) FindByDoctorID(_ context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointments := []models.Appointment{}
	for _, a := range s.appointments {
		if a.DoctorID == doctorID {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}

func (s *MemoryAppointmentStore) FindByDateRange(_ context.Context, from, to time.Time) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointments := []models.Appointment{}
	for _, a := range s.appointments {
		if !a.AppointmentDate.Before(from) && a.AppointmentDate.Before(to) {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}

func (s *MemoryAppointmentStore) Save(_ context.Context, appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[appointment.ID] = *appointment
	return nil
}

func (s *MemoryAppointmentStore) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return 0, nil
	}
	delete(s.appointments, id)
	return 1, nil
}

type MemoryFeedbackStore struct {
	mu        sync.Mutex
	feedbacks map[primitive.ObjectID]models.Feedback
}

func NewMemoryFeedbackStore() *MemoryFeedbackStore {
	return &MemoryFeedbackStore{feedbacks: make(map[primitive.ObjectID]models.Feedback)}
}

func (s *MemoryFeedbackStore) Insert(_ context.Context, feedback *models.Feedback) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	feedback.ID = id
	s.feedbacks[id] = *feedback
	return id, nil
}

func (s *MemoryFeedbackStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.feedbacks[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (s *MemoryFeedbackStore) FindByDoctorID(_ context.Context, doctorID primitive.ObjectID) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feedbacks := []models.Feedback{}
	for _, f := range s.feedbacks {
		if f.DoctorID == doctorID {
			feedbacks = append(feedbacks, f)
		}
	}
	return feedbacks, nil
}

func (s *MemoryFeedbackStore) FindByPatientID(_ context.Context, patientID primitive.ObjectID) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feedbacks := []models.Feedback{}
	for _, f := range s.feedbacks {
		if f.PatientID == patientID {
			feedbacks = append(feedbacks, f)
		}
	}
	return feedbacks, nil
}

func (s *MemoryFeedbackStore) Save(_ context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedbacks[feedback.ID] = *feedback
	return nil
}

func (s *MemoryFeedbackStore) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.feedbacks[id]; !ok {
		return 0, nil
	}
	delete(s.feedbacks, id)
	return 1, nil
}

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryOTPStore mirrors the Redis store's TTL behavior for tests.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]otpEntry)}
}

func (s *MemoryOTPStore) Set(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = otpEntry{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Get(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok {
		return "", nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, email)
		return "", nil
	}
	return entry.code, nil
}

func (s *MemoryOTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

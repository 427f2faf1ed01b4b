package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/repository"
	"HospitalConnect/services"
)

type recordingMailer struct {
	mu     sync.Mutex
	sent   map[string]string // recipient -> body
	failTo string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if to == m.failTo {
		return errors.New("smtp unavailable")
	}
	if m.sent == nil {
		m.sent = make(map[string]string)
	}
	m.sent[to] = body
	return nil
}

func seedAppointment(t *testing.T, store *repository.MemoryAppointmentStore, doctorName, doctorEmail, patientName string, at time.Time) {
	t.Helper()
	_, err := store.Insert(context.Background(), &models.Appointment{
		PatientID:          primitive.NewObjectID(),
		DoctorID:           primitive.NewObjectID(),
		PatientName:        patientName,
		PatientPhoneNumber: "5550000000",
		DoctorName:         doctorName,
		DoctorEmail:        doctorEmail,
		AppointmentDate:    at,
	})
	require.NoError(t, err)
}

func TestReminderJobGroupsByDoctor(t *testing.T) {
	store := repository.NewMemoryAppointmentStore()
	service := services.NewAppointmentService(store, repository.NewMemoryPatientStore(), repository.NewMemoryDoctorStore())
	mailer := &recordingMailer{}

	now := time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)
	seedAppointment(t, store, "Gregory House", "house@example.com", "Alice", now.Add(3*time.Hour))
	seedAppointment(t, store, "Gregory House", "house@example.com", "Bob", now.Add(time.Hour))
	seedAppointment(t, store, "James Wilson", "wilson@example.com", "Carol", now.Add(2*time.Hour))
	// yesterday, must not appear
	seedAppointment(t, store, "Gregory House", "house@example.com", "Dave", now.AddDate(0, 0, -1))

	NewReminderJob(service, mailer).Run(now)

	require.Len(t, mailer.sent, 2)

	house := mailer.sent["house@example.com"]
	assert.Contains(t, house, "You have 2 appointment(s)")
	assert.Contains(t, house, "Alice")
	assert.Contains(t, house, "Bob")
	assert.NotContains(t, house, "Dave")
	// sorted by time of day
	assert.Less(t, indexOf(t, house, "Bob"), indexOf(t, house, "Alice"))

	wilson := mailer.sent["wilson@example.com"]
	assert.Contains(t, wilson, "You have 1 appointment(s)")
	assert.Contains(t, wilson, "Carol")
}

func TestReminderJobSkipsFailedRecipient(t *testing.T) {
	store := repository.NewMemoryAppointmentStore()
	service := services.NewAppointmentService(store, repository.NewMemoryPatientStore(), repository.NewMemoryDoctorStore())
	mailer := &recordingMailer{failTo: "house@example.com"}

	now := time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)
	seedAppointment(t, store, "Gregory House", "house@example.com", "Alice", now.Add(time.Hour))
	seedAppointment(t, store, "James Wilson", "wilson@example.com", "Carol", now.Add(2*time.Hour))

	NewReminderJob(service, mailer).Run(now)

	// the failing doctor is skipped, the other still gets mail
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent["wilson@example.com"], "Carol")
}

func TestReminderJobNoAppointments(t *testing.T) {
	store := repository.NewMemoryAppointmentStore()
	service := services.NewAppointmentService(store, repository.NewMemoryPatientStore(), repository.NewMemoryDoctorStore())
	mailer := &recordingMailer{}

	NewReminderJob(service, mailer).Run(time.Now())

	assert.Empty(t, mailer.sent)
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	i := strings.Index(s, sub)
	require.GreaterOrEqual(t, i, 0, "%q not found", sub)
	return i
}

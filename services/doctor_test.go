package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HospitalConnect/models"
	"HospitalConnect/repository"
	"HospitalConnect/utils"
)

func newDoctorService(mailer *fakeMailer) (*DoctorService, *repository.MemoryDoctorStore) {
	store := repository.NewMemoryDoctorStore()
	otp := NewOtpService(repository.NewMemoryOTPStore(), mailer, time.Minute)
	return NewDoctorService(store, mailer, otp), store
}

func registerDoctor(t *testing.T, svc *DoctorService) *models.Doctor {
	t.Helper()
	doctor, err := svc.Register(context.Background(), models.RegisterDoctorRequest{
		Name:      "Gregory House",
		Specialty: "Diagnostics",
		Email:     "house@example.com",
		Password:  "Vicodin1",
		Education: "Johns Hopkins",
	})
	require.NoError(t, err)
	return doctor
}

func TestDoctorRegisterSendsConfirmationMail(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _ := newDoctorService(mailer)

	doctor := registerDoctor(t, svc)
	assert.False(t, doctor.ID.IsZero())
	assert.NotEqual(t, "Vicodin1", doctor.Password)
	require.Equal(t, 1, mailer.count())
	assert.Equal(t, "house@example.com", mailer.lastTo())
	assert.Equal(t, "Registration Successful", mailer.sent[0].subject)
}

func TestDoctorRegisterDuplicateEmailConflicts(t *testing.T) {
	mailer := &fakeMailer{}
	svc, store := newDoctorService(mailer)
	registerDoctor(t, svc)

	_, err := svc.Register(context.Background(), models.RegisterDoctorRequest{
		Name: "Impostor", Specialty: "Diagnostics", Email: "house@example.com", Password: "Other99",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, utils.StatusCode(err))

	doctors, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, doctors, 1)
}

func TestDoctorRegisterFailsWhenMailFails(t *testing.T) {
	mailer := &fakeMailer{fail: true}
	svc, _ := newDoctorService(mailer)

	_, err := svc.Register(context.Background(), models.RegisterDoctorRequest{
		Name: "Gregory House", Specialty: "Diagnostics", Email: "house@example.com", Password: "Vicodin1",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, utils.StatusCode(err))
}

func TestDoctorLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mailer := &fakeMailer{}
	svc, _ := newDoctorService(mailer)
	doctor := registerDoctor(t, svc)

	token, got, err := svc.Login(context.Background(), models.LoginDoctorRequest{
		Email: "house@example.com", Password: "Vicodin1",
	})
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, got.ID)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID.Hex(), claims.Subject)
	assert.Equal(t, "house@example.com", claims.Email)
	assert.Empty(t, claims.PhoneNumber)

	_, _, err = svc.Login(context.Background(), models.LoginDoctorRequest{
		Email: "house@example.com", Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, utils.StatusCode(err))
}

func TestDoctorFindBySpecialty(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _ := newDoctorService(mailer)
	registerDoctor(t, svc)

	diagnosticians, err := svc.FindBySpecialty(context.Background(), "Diagnostics")
	require.NoError(t, err)
	assert.Len(t, diagnosticians, 1)

	cardiologists, err := svc.FindBySpecialty(context.Background(), "Cardiology")
	require.NoError(t, err)
	assert.Empty(t, cardiologists)
}

func TestDoctorUpdateRehashesPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mailer := &fakeMailer{}
	svc, _ := newDoctorService(mailer)
	doctor := registerDoctor(t, svc)

	newPass := "NewSecret2"
	_, err := svc.Update(context.Background(), doctor.ID, models.UpdateDoctorRequest{Password: &newPass})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), models.LoginDoctorRequest{
		Email: "house@example.com", Password: "NewSecret2",
	})
	require.NoError(t, err)
	_, _, err = svc.Login(context.Background(), models.LoginDoctorRequest{
		Email: "house@example.com", Password: "Vicodin1",
	})
	require.Error(t, err)
}

func TestDoctorPasswordResetFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mailer := &fakeMailer{}
	svc, _ := newDoctorService(mailer)
	registerDoctor(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.ForgotPassword(ctx, "house@example.com"))
	require.Equal(t, 2, mailer.count()) // registration mail + OTP mail
	body := mailer.sent[1].body
	code := body[len(body)-6:]

	valid, err := svc.VerifyOtp(ctx, "house@example.com", code)
	require.NoError(t, err)
	assert.True(t, valid)

	err = svc.ResetPassword(ctx, models.ResetPasswordRequest{
		Email: "house@example.com", Otp: code, NewPassword: "Fresh123",
	})
	require.NoError(t, err)

	// OTP is cleared after a successful reset
	valid, err = svc.VerifyOtp(ctx, "house@example.com", code)
	require.NoError(t, err)
	assert.False(t, valid)

	_, _, err = svc.Login(ctx, models.LoginDoctorRequest{
		Email: "house@example.com", Password: "Fresh123",
	})
	require.NoError(t, err)
}

func TestDoctorResetPasswordRejectsBadOtp(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _ := newDoctorService(mailer)
	registerDoctor(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.ForgotPassword(ctx, "house@example.com"))
	body := mailer.sent[1].body
	code := body[len(body)-6:]
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	err := svc.ResetPassword(ctx, models.ResetPasswordRequest{
		Email: "house@example.com", Otp: wrong, NewPassword: "Fresh123",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
}

func TestDoctorForgotPasswordUnknownEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _ := newDoctorService(mailer)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	require.Error(t, err)
	// the doctor reset flow deliberately reports not-found, unlike login
	assert.Equal(t, http.StatusNotFound, utils.StatusCode(err))
	assert.Equal(t, 0, mailer.count())
}

package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HospitalConnect/models"
	"HospitalConnect/repository"
	"HospitalConnect/utils"
)

func newPatientService() (*PatientService, *repository.MemoryPatientStore) {
	store := repository.NewMemoryPatientStore()
	return NewPatientService(store), store
}

func TestPatientRegisterHashesPassword(t *testing.T) {
	svc, _ := newPatientService()

	patient, err := svc.Register(context.Background(), models.RegisterPatientRequest{
		Name:        "Alice",
		PhoneNumber: "5551234567",
		Password:    "Secret1",
	})
	require.NoError(t, err)
	assert.False(t, patient.ID.IsZero())
	assert.NotEqual(t, "Secret1", patient.Password)
	assert.False(t, patient.CreatedAt.IsZero())
}

func TestPatientRegisterDuplicatePhoneConflicts(t *testing.T) {
	svc, store := newPatientService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterPatientRequest{
		Name: "Alice", PhoneNumber: "5551234567", Password: "Secret1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RegisterPatientRequest{
		Name: "Mallory", PhoneNumber: "5551234567", Password: "Other99",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, utils.StatusCode(err))

	// no second record
	patients, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 1)
	assert.Equal(t, "Alice", patients[0].Name)
}

func TestPatientLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _ := newPatientService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterPatientRequest{
		Name: "Alice", PhoneNumber: "5551234567", Password: "Secret1",
	})
	require.NoError(t, err)

	token, patient, err := svc.Login(ctx, models.LoginPatientRequest{
		PhoneNumber: "5551234567", Password: "Secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice", patient.Name)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, patient.ID.Hex(), claims.Subject)
	assert.Equal(t, "5551234567", claims.PhoneNumber)
	assert.Empty(t, claims.Email)
}

func TestPatientLoginBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _ := newPatientService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterPatientRequest{
		Name: "Alice", PhoneNumber: "5551234567", Password: "Secret1",
	})
	require.NoError(t, err)

	_, _, wrongPass := svc.Login(ctx, models.LoginPatientRequest{
		PhoneNumber: "5551234567", Password: "nope",
	})
	_, _, unknown := svc.Login(ctx, models.LoginPatientRequest{
		PhoneNumber: "0000000000", Password: "Secret1",
	})

	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.Equal(t, http.StatusUnauthorized, utils.StatusCode(wrongPass))
	// unknown number and wrong password are indistinguishable to the caller
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestPatientUpdateMergesFields(t *testing.T) {
	svc, _ := newPatientService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterPatientRequest{
		Name: "Alice", PhoneNumber: "5551234567", Password: "Secret1",
	})
	require.NoError(t, err)

	insurance := "ACME Gold"
	updated, err := svc.Update(ctx, "5551234567", models.UpdatePatientRequest{
		InsuranceDetails: &insurance,
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME Gold", updated.InsuranceDetails)
	assert.Equal(t, "Alice", updated.Name)

	// same payload again lands in the same state
	again, err := svc.Update(ctx, "5551234567", models.UpdatePatientRequest{
		InsuranceDetails: &insurance,
	})
	require.NoError(t, err)
	assert.Equal(t, updated.InsuranceDetails, again.InsuranceDetails)
	assert.Equal(t, updated.Name, again.Name)
	assert.Equal(t, updated.PhoneNumber, again.PhoneNumber)
}

func TestPatientUpdateUnknownPhoneNotFound(t *testing.T) {
	svc, _ := newPatientService()

	name := "Bob"
	_, err := svc.Update(context.Background(), "0000000000", models.UpdatePatientRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.StatusCode(err))
}

func TestPatientDelete(t *testing.T) {
	svc, _ := newPatientService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterPatientRequest{
		Name: "Alice", PhoneNumber: "5551234567", Password: "Secret1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "5551234567"))

	err = svc.Delete(ctx, "5551234567")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.StatusCode(err))
}

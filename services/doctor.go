package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"HospitalConnect/models"
	"HospitalConnect/notification"
	"HospitalConnect/utils"
)

type DoctorService struct {
	Store  DoctorStore
	Mailer notification.Mailer
	Otp    *OtpService
}

func NewDoctorService(store DoctorStore, mailer notification.Mailer, otp *OtpService) *DoctorService {
	return &DoctorService{Store: store, Mailer: mailer, Otp: otp}
}

/*
* Check the email is not taken
* Hash the password and persist the doctor
* Send the registration confirmation mail
 */
func (s *DoctorService) Register(ctx context.Context, req models.RegisterDoctorRequest) (*models.Doctor, error) {
	existing, err := s.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Println("Error looking up doctor by email:", err)
		return nil, storeErr(err, "could not register doctor")
	}
	if existing != nil {
		return nil, utils.ConflictError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error hashing doctor password:", err)
		return nil, utils.InternalError("could not register doctor", err)
	}

	now := time.Now()
	doctor := &models.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Email:     req.Email,
		Password:  string(hash),
		Education: req.Education,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.Store.Insert(ctx, doctor)
	if err != nil {
		log.Println("Error inserting doctor:", err)
		return nil, storeErr(err, "could not register doctor")
	}
	doctor.ID = id

	body := fmt.Sprintf("Dear %s,\n\nWelcome to the Hospital System! Your registration has been successfully completed.\n\nYou can now log in and start using our services.\n\nIf you have any questions, feel free to reach out.\n\nBest regards,\nThe Hospital Team", doctor.Name)
	if err := s.Mailer.Send(doctor.Email, "Registration Successful", body); err != nil {
		log.Println("Registration email failed:", err)
		return nil, utils.InternalError("failed to send registration email", err)
	}
	return doctor, nil
}

func (s *DoctorService) Login(ctx context.Context, req models.LoginDoctorRequest) (string, *models.Doctor, error) {
	doctor, err := s.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Println("Error looking up doctor by email:", err)
		return "", nil, storeErr(err, "could not log in")
	}
	if doctor == nil {
		return "", nil, utils.UnauthorizedError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)); err != nil {
		return "", nil, utils.UnauthorizedError("invalid email or password")
	}

	token, err := utils.GenerateToken(doctor.ID.Hex(), doctor.Email, "")
	if err != nil {
		log.Println("Error generating doctor token:", err)
		return "", nil, utils.InternalError("could not log in", err)
	}
	return token, doctor, nil
}

func (s *DoctorService) FindAll(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Store.FindAll(ctx)
	if err != nil {
		log.Println("Error listing doctors:", err)
		return nil, storeErr(err, "could not list doctors")
	}
	return doctors, nil
}

func (s *DoctorService) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	doctors, err := s.Store.FindBySpecialty(ctx, specialty)
	if err != nil {
		log.Println("Error listing doctors by specialty:", err)
		return nil, storeErr(err, "could not list doctors")
	}
	return doctors, nil
}

func (s *DoctorService) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	doctor, err := s.Store.FindByEmail(ctx, email)
	if err != nil {
		log.Println("Error looking up doctor by email:", err)
		return nil, storeErr(err, "could not fetch doctor")
	}
	if doctor == nil {
		return nil, utils.NotFoundError("doctor not found")
	}
	return doctor, nil
}

func (s *DoctorService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateDoctorRequest) (*models.Doctor, error) {
	doctor, err := s.Store.FindByID(ctx, id)
	if err != nil {
		log.Println("Error looking up doctor by id:", err)
		return nil, storeErr(err, "could not update doctor")
	}
	if doctor == nil {
		return nil, utils.NotFoundError("doctor not found with id " + id.Hex())
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.Education != nil {
		doctor.Education = *req.Education
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Error hashing doctor password:", err)
			return nil, utils.InternalError("could not update doctor", err)
		}
		doctor.Password = string(hash)
	}
	doctor.UpdatedAt = time.Now()

	if err := s.Store.Save(ctx, doctor); err != nil {
		log.Println("Error saving doctor:", err)
		return nil, storeErr(err, "could not update doctor")
	}
	return doctor, nil
}

func (s *DoctorService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.Store.DeleteByID(ctx, id)
	if err != nil {
		log.Println("Error deleting doctor:", err)
		return storeErr(err, "could not delete doctor")
	}
	if deleted == 0 {
		return utils.NotFoundError("doctor not found with id " + id.Hex())
	}
	return nil
}

// ForgotPassword mails a reset code. Unlike login, an unknown email is
// reported as not-found here, matching the existing client contract.
func (s *DoctorService) ForgotPassword(ctx context.Context, email string) error {
	doctor, err := s.Store.FindByEmail(ctx, email)
	if err != nil {
		log.Println("Error looking up doctor by email:", err)
		return storeErr(err, "could not send OTP")
	}
	if doctor == nil {
		return utils.NotFoundError("doctor not found")
	}
	return s.Otp.Send(ctx, email)
}

func (s *DoctorService) VerifyOtp(ctx context.Context, email, otp string) (bool, error) {
	return s.Otp.Verify(ctx, email, otp)
}

/*
* Re-verify the OTP
* Hash and persist the new password
* Clear the OTP so it cannot be replayed
 */
func (s *DoctorService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	doctor, err := s.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Println("Error looking up doctor by email:", err)
		return storeErr(err, "could not reset password")
	}
	if doctor == nil {
		return utils.NotFoundError("doctor not found")
	}

	valid, err := s.Otp.Verify(ctx, req.Email, req.Otp)
	if err != nil {
		return err
	}
	if !valid {
		return utils.ValidationError("invalid OTP")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error hashing doctor password:", err)
		return utils.InternalError("could not reset password", err)
	}
	doctor.Password = string(hash)
	doctor.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, doctor); err != nil {
		log.Println("Error saving doctor:", err)
		return storeErr(err, "could not reset password")
	}

	if err := s.Otp.Clear(ctx, req.Email); err != nil {
		// Password already changed; the stale code dies with its TTL.
		log.Println("Error clearing OTP after reset:", err)
	}
	return nil
}

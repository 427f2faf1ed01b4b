package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"HospitalConnect/notification"
	"HospitalConnect/utils"
)

// OtpService hands out one-time codes for the doctor password-reset flow.
// Codes live in a keyed store with a TTL; a new request overwrites any code
// already held for the email.
type OtpService struct {
	Store  OTPStore
	Mailer notification.Mailer
	TTL    time.Duration
}

func NewOtpService(store OTPStore, mailer notification.Mailer, ttl time.Duration) *OtpService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &OtpService{Store: store, Mailer: mailer, TTL: ttl}
}

/*
* Generate a random 6-digit code
* Store it under the email with the configured TTL
* Mail it out
 */
func (s *OtpService) Send(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		log.Println("Error generating OTP:", err)
		return utils.InternalError("could not generate OTP", err)
	}
	if err := s.Store.Set(ctx, email, code, s.TTL); err != nil {
		log.Println("Error storing OTP:", err)
		return utils.InternalError("could not store OTP", err)
	}
	body := fmt.Sprintf("Your OTP is %s", code)
	if err := s.Mailer.Send(email, "OTP for Password Change", body); err != nil {
		log.Println("OTP email failed:", err)
		return utils.InternalError("failed to send OTP email", err)
	}
	return nil
}

// Verify reports whether the stored code matches. It does not consume the
// code; only Clear or expiry retires it.
func (s *OtpService) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.Store.Get(ctx, email)
	if err != nil {
		log.Println("Error reading OTP:", err)
		return false, utils.InternalError("could not verify OTP", err)
	}
	return stored != "" && stored == code, nil
}

func (s *OtpService) Clear(ctx context.Context, email string) error {
	if err := s.Store.Delete(ctx, email); err != nil {
		log.Println("Error clearing OTP:", err)
		return utils.InternalError("could not clear OTP", err)
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HospitalConnect/repository"
)

func TestOtpRoundTrip(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewOtpService(repository.NewMemoryOTPStore(), mailer, time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "doc@example.com"))
	require.Equal(t, 1, mailer.count())
	assert.Equal(t, "doc@example.com", mailer.lastTo())

	// pull the code out of the mail body
	body := mailer.sent[0].body
	code := body[len(body)-6:]
	require.Len(t, code, 6)

	valid, err := svc.Verify(ctx, "doc@example.com", code)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.Verify(ctx, "doc@example.com", "000000")
	require.NoError(t, err)
	if code == "000000" {
		t.Skip("generated code collided with the wrong-code probe")
	}
	assert.False(t, valid)

	require.NoError(t, svc.Clear(ctx, "doc@example.com"))
	valid, err = svc.Verify(ctx, "doc@example.com", code)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestOtpOverwritesPriorCode(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewOtpService(repository.NewMemoryOTPStore(), mailer, time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "doc@example.com"))
	first := mailer.sent[0].body
	firstCode := first[len(first)-6:]

	require.NoError(t, svc.Send(ctx, "doc@example.com"))
	second := mailer.sent[1].body
	secondCode := second[len(second)-6:]

	valid, err := svc.Verify(ctx, "doc@example.com", secondCode)
	require.NoError(t, err)
	assert.True(t, valid)

	if firstCode != secondCode {
		valid, err = svc.Verify(ctx, "doc@example.com", firstCode)
		require.NoError(t, err)
		assert.False(t, valid)
	}
}

func TestOtpExpires(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewOtpService(repository.NewMemoryOTPStore(), mailer, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "doc@example.com"))
	body := mailer.sent[0].body
	code := body[len(body)-6:]

	time.Sleep(5 * time.Millisecond)

	valid, err := svc.Verify(ctx, "doc@example.com", code)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestOtpSendFailsWhenMailerFails(t *testing.T) {
	svc := NewOtpService(repository.NewMemoryOTPStore(), &fakeMailer{fail: true}, time.Minute)

	err := svc.Send(context.Background(), "doc@example.com")
	require.Error(t, err)
}

func TestGenerateCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code[0], byte('1'))
	}
}

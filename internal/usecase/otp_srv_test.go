package usecase

import (
	"context"
	"testing"
	"time"

	"order-management/internal/data/entity"
	"order-management/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTP(t *testing.T) {
	svc := newTestService(newFakeRepository())

	otp, err := svc.OTP.SendOTP(context.Background(), &request.SendOTPRequest{
		PhoneNumber: "+79161234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "+79161234567", otp.PhoneNumber)
	assert.GreaterOrEqual(t, otp.Code, 1000)
	assert.LessOrEqual(t, otp.Code, 9999)
	assert.False(t, otp.IsUsed)
}

func TestSendOTPInvalidPhone(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.OTP.SendOTP(context.Background(), &request.SendOTPRequest{
		PhoneNumber: "12345",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestVerifyOTP(t *testing.T) {
	svc := newTestService(newFakeRepository())

	otp, err := svc.OTP.SendOTP(context.Background(), &request.SendOTPRequest{
		PhoneNumber: "+79161234567",
	})
	require.NoError(t, err)

	result, err := svc.OTP.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		PhoneNumber: "+79161234567",
		Code:        otp.Code,
	})

	require.NoError(t, err)
	assert.True(t, result.Verified)

	// A used code cannot be verified twice.
	_, err = svc.OTP.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		PhoneNumber: "+79161234567",
		Code:        otp.Code,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc := newTestService(newFakeRepository())

	otp, err := svc.OTP.SendOTP(context.Background(), &request.SendOTPRequest{
		PhoneNumber: "+79161234567",
	})
	require.NoError(t, err)

	wrong := otp.Code + 1
	if wrong > 9999 {
		wrong = 1000
	}

	_, err = svc.OTP.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		PhoneNumber: "+79161234567",
		Code:        wrong,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")
}

func TestVerifyOTPExpired(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	// Plant a code issued outside the expiry window.
	stale := entity.NewOneTimePassword("+79161234567", 4321)
	stale.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.OTP.Create(context.Background(), stale))

	_, err := svc.OTP.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		PhoneNumber: "+79161234567",
		Code:        4321,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")
}

func TestGetOTPsByPhone(t *testing.T) {
	svc := newTestService(newFakeRepository())

	for i := 0; i < 3; i++ {
		_, err := svc.OTP.SendOTP(context.Background(), &request.SendOTPRequest{
			PhoneNumber: "+79161234567",
		})
		require.NoError(t, err)
	}

	otps, err := svc.OTP.GetOTPsByPhone(context.Background(), "+79161234567")
	require.NoError(t, err)
	assert.Len(t, otps, 3)

	otps, err = svc.OTP.GetOTPsByPhone(context.Background(), "+79160000000")
	require.NoError(t, err)
	assert.Empty(t, otps)

	_, err = svc.OTP.GetOTPsByPhone(context.Background(), "")
	require.Error(t, err)
}

func TestVerifyOTPPicksLatest(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	// Two outstanding codes with the same value; verification consumes one.
	first := entity.NewOneTimePassword("+79161234567", 5555)
	first.CreatedAt = time.Now().UTC().Add(-5 * time.Minute)
	require.NoError(t, repo.OTP.Create(context.Background(), first))

	second := entity.NewOneTimePassword("+79161234567", 5555)
	require.NoError(t, repo.OTP.Create(context.Background(), second))

	result, err := svc.OTP.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		PhoneNumber: "+79161234567",
		Code:        5555,
	})
	require.NoError(t, err)
	assert.True(t, result.Verified)

	// The older one is still outstanding.
	remaining, err := repo.OTP.FindLatestUnused(context.Background(), "+79161234567", 5555,
		time.Now().UTC().Add(-10*time.Minute))
	require.NoError(t, err)
	require.NotNil(t, remaining)
	assert.Equal(t, first.ID, remaining.ID)
}

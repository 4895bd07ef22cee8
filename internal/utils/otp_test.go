package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, otp, 6)
		assert.Regexp(t, `^[0-9]{6}$`, otp)
		seen[otp] = true
	}
	// 50 draws from a million values should not all collide
	assert.Greater(t, len(seen), 1)
}

func TestOTPExpiry(t *testing.T) {
	before := time.Now()
	expiry := OTPExpiry(5 * time.Minute)
	assert.True(t, expiry.After(before.Add(4*time.Minute)))
	assert.True(t, expiry.Before(before.Add(6*time.Minute)))
}

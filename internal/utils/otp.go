package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOTP returns a random 6-digit numeric one-time code
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPExpiry computes the expiry timestamp for a freshly issued OTP
func OTPExpiry(ttl time.Duration) time.Time {
	return time.Now().Add(ttl)
}

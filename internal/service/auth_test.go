package service

import (
	"database/sql/driver"
	"testing"
	"time"

	"marketplace/internal/apperr"
	"marketplace/internal/config"
	"marketplace/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "access-secret",
		JWTExpiryMin:     60,
		JWTRefreshSecret: "refresh-secret",
		JWTRefreshMin:    7 * 24 * 60,
		OTPExpiryMin:     5,
		BcryptCost:       bcrypt.MinCost,
	}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func userRowsWith(cols []string, vals []driverValues) *sqlmock.Rows {
	rows := sqlmock.NewRows(cols)
	for _, v := range vals {
		rows.AddRow(v...)
	}
	return rows
}

type driverValues = []driver.Value

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewAuthService(db, testAuthConfig()), mock
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "password", "is_verified"},
			[]driverValues{{1, "a@x.com", hashFor(t, "correct-horse"), true}},
		))

	_, _, err := svc.Login("a@x.com", "wrong-horse")
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnError(gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nobody@x.com", "whatever")
	// Unknown email and wrong password are indistinguishable to the caller
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	assert.Equal(t, "Invalid credentials", apperr.Message(err, ""))
}

func TestLoginUnverifiedUser(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "password", "is_verified"},
			[]driverValues{{1, "a@x.com", hashFor(t, "correct-horse"), false}},
		))

	_, _, err := svc.Login("a@x.com", "correct-horse")
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "password", "is_verified"},
			[]driverValues{{1, "a@x.com", hashFor(t, "correct-horse"), true}},
		))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, tokens, err := svc.Login("a@x.com", "correct-horse")
	require.NoError(t, err)
	assert.NotNil(t, user.LastLogin)

	// Each token verifies only against its own secret
	claims, err := utils.ParseJWT(tokens.AccessToken, "access-secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	_, err = utils.ParseJWT(tokens.RefreshToken, "access-secret")
	assert.Error(t, err)
	claims, err = utils.ParseJWT(tokens.RefreshToken, "refresh-secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email"},
			[]driverValues{{1, "a@x.com"}},
		))

	_, err := svc.Signup(SignupInput{Name: "A", Email: "a@x.com", Password: "longenough"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyOTPMismatch(t *testing.T) {
	svc, mock := newAuthService(t)

	expiry := time.Now().Add(5 * time.Minute)
	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "otp", "otp_expiry"},
			[]driverValues{{1, "a@x.com", "123456", expiry}},
		))

	_, err := svc.VerifyOTP("a@x.com", "654321")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, mock := newAuthService(t)

	expiry := time.Now().Add(-time.Minute)
	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "otp", "otp_expiry"},
			[]driverValues{{1, "a@x.com", "123456", expiry}},
		))

	_, err := svc.VerifyOTP("a@x.com", "123456")
	// Expired is a distinct failure from a wrong code
	assert.Equal(t, apperr.KindExpired, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyOTPSuccessClearsOTP(t *testing.T) {
	svc, mock := newAuthService(t)

	expiry := time.Now().Add(5 * time.Minute)
	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "otp", "otp_expiry", "is_verified"},
			[]driverValues{{1, "a@x.com", "123456", expiry, false}},
		))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := svc.VerifyOTP("a@x.com", "123456")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.OTP)
	assert.Nil(t, user.OTPExpiry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPasswordRequiresValidOTP(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "otp", "otp_expiry"},
			[]driverValues{{1, "a@x.com", nil, nil}},
		))

	err := svc.ResetPassword("a@x.com", "123456", "new-password")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestResetPasswordSuccess(t *testing.T) {
	svc, mock := newAuthService(t)

	expiry := time.Now().Add(5 * time.Minute)
	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email", "otp", "otp_expiry"},
			[]driverValues{{1, "a@x.com", "123456", expiry}},
		))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.ResetPassword("a@x.com", "123456", "new-password"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestOTPUnknownEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := svc.RequestOTP("nobody@x.com")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRequestOTPStoresCodeAndExpiry(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(userRowsWith(
			[]string{"id", "email"},
			[]driverValues{{1, "a@x.com"}},
		))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	otp, err := svc.RequestOTP("a@x.com")
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	assert.NoError(t, mock.ExpectationsWereMet())
}

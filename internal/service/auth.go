package service

import (
	"errors"
	"time"

	"marketplace/internal/apperr"
	"marketplace/internal/config"
	"marketplace/internal/domain"
	"marketplace/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns the signup/login/OTP/password-reset flows.
// A user moves Unverified → OtpPending (OTP issued) → Verified (OTP
// checked), and independently Active ⇄ Inactive via admin toggles.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// SignupInput is the registration payload
type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// TokenPair is the signed credential pair issued at login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Signup registers a new user with a hashed password
func (s *AuthService) Signup(input SignupInput) (*domain.User, error) {
	var existing domain.User
	err := s.db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	user := domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hash),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal(err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")
	return &user, nil
}

// Login verifies credentials and issues the access/refresh token pair.
// The user must exist, the password must match, and the account must be
// verified.
func (s *AuthService) Login(email, password string) (*domain.User, *TokenPair, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.Authentication("Invalid credentials")
		}
		return nil, nil, apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperr.Authentication("Invalid credentials")
	}
	if !user.IsVerified {
		return nil, nil, apperr.Authentication("Please verify your email first")
	}

	now := time.Now()
	if err := s.db.Model(&domain.User{}).Where("id = ?", user.ID).
		Update("last_login", now).Error; err != nil {
		return nil, nil, apperr.Internal(err)
	}
	user.LastLogin = &now

	access, err := utils.GenerateJWT(user.Email, s.cfg.JWTSecret,
		time.Duration(s.cfg.JWTExpiryMin)*time.Minute)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	refresh, err := utils.GenerateJWT(user.Email, s.cfg.JWTRefreshSecret,
		time.Duration(s.cfg.JWTRefreshMin)*time.Minute)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	logrus.WithField("user_id", user.ID).Info("User logged in")
	return &user, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RequestOTP issues a fresh OTP with a short expiry window, overwriting
// any prior pending code. Also serves the forgot-password flow.
func (s *AuthService) RequestOTP(email string) (string, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("Email not registered")
		}
		return "", apperr.Internal(err)
	}
	otp, err := utils.GenerateOTP()
	if err != nil {
		return "", apperr.Internal(err)
	}
	expiry := utils.OTPExpiry(time.Duration(s.cfg.OTPExpiryMin) * time.Minute)
	if err := s.db.Model(&domain.User{}).Where("email = ?", email).
		Updates(map[string]any{"otp": otp, "otp_expiry": expiry}).Error; err != nil {
		return "", apperr.Internal(err)
	}
	logrus.WithField("user_id", user.ID).Info("OTP issued")
	return otp, nil
}

// VerifyOTP checks the submitted code against the pending OTP. On success
// the OTP fields are cleared and the user is marked verified.
func (s *AuthService) VerifyOTP(email, otp string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Email not registered")
		}
		return nil, apperr.Internal(err)
	}
	if user.OTP == nil || *user.OTP != otp {
		return nil, apperr.Validation("Invalid OTP")
	}
	if user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		return nil, apperr.Expired("OTP expired, please request a new one")
	}
	if err := s.db.Model(&domain.User{}).Where("email = ?", email).
		Updates(map[string]any{
			"otp":         nil,
			"otp_expiry":  nil,
			"is_verified": true,
		}).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	user.OTP = nil
	user.OTPExpiry = nil
	user.IsVerified = true
	logrus.WithField("user_id", user.ID).Info("User verified")
	return &user, nil
}

// ResetPassword updates the password hash after checking that a matching,
// unexpired OTP is pending on the user record. The OTP fields are cleared
// with the password update.
func (s *AuthService) ResetPassword(email, otp, newPassword string) error {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Email not registered")
		}
		return apperr.Internal(err)
	}
	if user.OTP == nil || *user.OTP != otp {
		return apperr.Validation("Invalid OTP")
	}
	if user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		return apperr.Expired("OTP expired, please request a new one")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := s.db.Model(&domain.User{}).Where("email = ?", email).
		Updates(map[string]any{
			"password":   string(hash),
			"otp":        nil,
			"otp_expiry": nil,
		}).Error; err != nil {
		return apperr.Internal(err)
	}
	logrus.WithField("user_id", user.ID).Info("Password reset")
	return nil
}

// UpdateProfileInput carries the editable profile fields
type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Profile *string `json:"profile"`
}

// UpdateProfile applies a partial update to a user's profile fields
func (s *AuthService) UpdateProfile(userID uint, input UpdateProfileInput) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Profile != nil {
		updates["profile"] = *input.Profile
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.User{}).Where("id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

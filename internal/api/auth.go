package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmailRequest carries the email for OTP flows
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest carries an email plus the submitted code
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest carries the OTP-protected password change
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// SignupHandler registers a new user
func SignupHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SignupInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("name, email and password are required"), "Invalid request")
			return
		}
		user, err := svc.Signup(req)
		if err != nil {
			respondError(c, err, "Signup failed")
			return
		}
		respondOK(c, http.StatusCreated, "Signup successful", user)
	}
}

// LoginHandler authenticates a user and issues the token pair
func LoginHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("email and password are required"), "Invalid request")
			return
		}
		user, tokens, err := svc.Login(req.Email, req.Password)
		if err != nil {
			respondError(c, err, "Login failed")
			return
		}
		respondOK(c, http.StatusOK, "Login successful", gin.H{
			"user":          user,
			"access_token":  tokens.AccessToken,
			"refresh_token": tokens.RefreshToken,
		})
	}
}

// RequestOTPHandler issues a fresh OTP for verification or password reset.
// Also mounted as the forgot-password endpoint.
func RequestOTPHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("email is required"), "Invalid request")
			return
		}
		// The OTP itself is delivered out of band, never in the response
		if _, err := svc.RequestOTP(req.Email); err != nil {
			respondError(c, err, "Failed to send OTP")
			return
		}
		respondOK(c, http.StatusOK, "OTP sent to email", nil)
	}
}

// VerifyOTPHandler checks a submitted code and marks the user verified
func VerifyOTPHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("email and otp are required"), "Invalid request")
			return
		}
		user, err := svc.VerifyOTP(req.Email, req.OTP)
		if err != nil {
			respondError(c, err, "OTP verification failed")
			return
		}
		respondOK(c, http.StatusOK, "OTP verified successfully", user)
	}
}

// ResetPasswordHandler updates the password after OTP validation
func ResetPasswordHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("email, otp and new_password are required"), "Invalid request")
			return
		}
		if err := svc.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
			respondError(c, err, "Password reset failed")
			return
		}
		respondOK(c, http.StatusOK, "Password reset successful", nil)
	}
}

// UpdateProfileHandler applies a partial profile update
func UpdateProfileHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("userId must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateProfileInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid profile payload"), "Invalid request")
			return
		}
		user, err := svc.UpdateProfile(uint(userID), req)
		if err != nil {
			respondError(c, err, "Failed to update profile")
			return
		}
		respondOK(c, http.StatusOK, "Profile updated successfully", user)
	}
}

package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateKycHandler submits a KYC record for a user
func CreateKycHandler(svc *service.KycService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.KycInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid kyc payload"), "Invalid request")
			return
		}
		record, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create KYC record")
			return
		}
		respondOK(c, http.StatusCreated, "KYC record created successfully", record)
	}
}

// GetKycHandler returns one KYC record
func GetKycHandler(svc *service.KycService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("kyc id must be numeric"), "Invalid request")
			return
		}
		record, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch KYC record")
			return
		}
		respondOK(c, http.StatusOK, "KYC record fetched successfully", record)
	}
}

// ListKycHandler returns all KYC records
func ListKycHandler(svc *service.KycService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.FindAll()
		if err != nil {
			respondError(c, err, "Failed to fetch KYC records")
			return
		}
		respondOK(c, http.StatusOK, "KYC records fetched successfully", records)
	}
}

// UpdateKycHandler updates a KYC record
func UpdateKycHandler(svc *service.KycService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("kyc id must be numeric"), "Invalid request")
			return
		}
		var req service.KycInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid kyc payload"), "Invalid request")
			return
		}
		record, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update KYC record")
			return
		}
		respondOK(c, http.StatusOK, "KYC record updated successfully", record)
	}
}

// DeleteKycHandler removes a KYC record
func DeleteKycHandler(svc *service.KycService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("kyc id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete KYC record")
			return
		}
		respondOK(c, http.StatusOK, "KYC record deleted successfully", nil)
	}
}

package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAddressHandler adds an address to a user
func CreateAddressHandler(svc *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateAddressInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("user_id, phone, address and title are required"), "Invalid request")
			return
		}
		address, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create address")
			return
		}
		respondOK(c, http.StatusCreated, "Address created successfully", address)
	}
}

// GetAddressHandler returns one address
func GetAddressHandler(svc *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("address id must be numeric"), "Invalid request")
			return
		}
		address, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch address")
			return
		}
		respondOK(c, http.StatusOK, "Address fetched successfully", address)
	}
}

// ListAddressesHandler returns a user's addresses
func ListAddressesHandler(svc *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("user_id query parameter must be numeric"), "Invalid request")
			return
		}
		addresses, err := svc.FindByUserID(uint(userID))
		if err != nil {
			respondError(c, err, "Failed to fetch addresses")
			return
		}
		respondOK(c, http.StatusOK, "Addresses fetched successfully", addresses)
	}
}

// UpdateAddressHandler applies a partial address update
func UpdateAddressHandler(svc *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("address id must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateAddressInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid address payload"), "Invalid request")
			return
		}
		address, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update address")
			return
		}
		respondOK(c, http.StatusOK, "Address updated successfully", address)
	}
}

// DeleteAddressHandler removes an address
func DeleteAddressHandler(svc *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("address id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete address")
			return
		}
		respondOK(c, http.StatusOK, "Address deleted successfully", nil)
	}
}

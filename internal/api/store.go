package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/middleware"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateStoreHandler registers a new store in a market
func CreateStoreHandler(svc *service.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateStoreInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("market_id, vendor_id and store_name are required"), "Invalid request")
			return
		}
		store, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create store")
			return
		}
		respondOK(c, http.StatusCreated, "Store created successfully", store)
	}
}

// GetStoreHandler returns one store
func GetStoreHandler(svc *service.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("store id must be numeric"), "Invalid request")
			return
		}
		store, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch store")
			return
		}
		respondOK(c, http.StatusOK, "Store fetched successfully", store)
	}
}

// ListStoresHandler returns stores, optionally filtered by market or vendor
func ListStoresHandler(svc *service.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if marketID := c.Query("market_id"); marketID != "" {
			id, err := strconv.ParseUint(marketID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("market_id must be numeric"), "Invalid request")
				return
			}
			stores, err := svc.FindByMarketID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch stores")
				return
			}
			respondOK(c, http.StatusOK, "Stores fetched successfully", stores)
			return
		}
		if vendorID := c.Query("vendor_id"); vendorID != "" {
			id, err := strconv.ParseUint(vendorID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("vendor_id must be numeric"), "Invalid request")
				return
			}
			stores, err := svc.FindByVendorID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch stores")
				return
			}
			respondOK(c, http.StatusOK, "Stores fetched successfully", stores)
			return
		}
		stores, err := svc.FindAll()
		if err != nil {
			respondError(c, err, "Failed to fetch stores")
			return
		}
		respondOK(c, http.StatusOK, "Stores fetched successfully", stores)
	}
}

// UpdateStoreHandler applies a partial store update
func UpdateStoreHandler(svc *service.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("store id must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateStoreInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid store payload"), "Invalid request")
			return
		}
		store, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update store")
			return
		}
		respondOK(c, http.StatusOK, "Store updated successfully", store)
	}
}

// ApproveStoreHandler marks a store approved. Organization admins may
// only approve stores whose vendor belongs to their organization; that
// check was deferred by the policy layer and is settled here.
func ApproveStoreHandler(svc *service.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("shopId"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("shopId must be numeric"), "Invalid request")
			return
		}
		var requiredOrg *uint
		if v, ok := c.Get(middleware.CtxRequiredOrg); ok {
			if orgID, ok := v.(uint); ok {
				requiredOrg = &orgID
			}
		}
		store, err := svc.Approve(uint(id), requiredOrg)
		if err != nil {
			respondError(c, err, "Failed to approve store")
			return
		}
		respondOK(c, http.StatusOK, "Store approved successfully", store)
	}
}

// DeleteStoreHandler removes a store
func DeleteStoreHandler(svc *service.StoreService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("store id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete store")
			return
		}
		respondOK(c, http.StatusOK, "Store deleted successfully", nil)
	}
}

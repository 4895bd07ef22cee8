package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateMarketHandler creates a market
func CreateMarketHandler(svc *service.MarketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateMarketInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("name is required"), "Invalid request")
			return
		}
		market, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create market")
			return
		}
		respondOK(c, http.StatusCreated, "Market created successfully", market)
	}
}

// GetMarketHandler returns one market
func GetMarketHandler(svc *service.MarketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("market id must be numeric"), "Invalid request")
			return
		}
		market, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch market")
			return
		}
		respondOK(c, http.StatusOK, "Market fetched successfully", market)
	}
}

// ListMarketsHandler returns all markets
func ListMarketsHandler(svc *service.MarketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		markets, err := svc.FindAll()
		if err != nil {
			respondError(c, err, "Failed to fetch markets")
			return
		}
		respondOK(c, http.StatusOK, "Markets fetched successfully", markets)
	}
}

// UpdateMarketHandler applies a partial market update
func UpdateMarketHandler(svc *service.MarketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("market id must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateMarketInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid market payload"), "Invalid request")
			return
		}
		market, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update market")
			return
		}
		respondOK(c, http.StatusOK, "Market updated successfully", market)
	}
}

// DeleteMarketHandler removes a market
func DeleteMarketHandler(svc *service.MarketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("market id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete market")
			return
		}
		respondOK(c, http.StatusOK, "Market deleted successfully", nil)
	}
}

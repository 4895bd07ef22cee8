package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderHandler creates an order with its items atomically
func CreateOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateOrderInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("store_id, user_id, total_bill and items are required"), "Invalid request")
			return
		}
		order, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create order")
			return
		}
		respondOK(c, http.StatusCreated, "Order created successfully", order)
	}
}

// GetOrderHandler returns one order with items and references
func GetOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("order id must be numeric"), "Invalid request")
			return
		}
		order, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch order")
			return
		}
		respondOK(c, http.StatusOK, "Order fetched successfully", order)
	}
}

// ListOrdersHandler returns all orders, optionally filtered by user or store
func ListOrdersHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.Query("user_id"); userID != "" {
			id, err := strconv.ParseUint(userID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("user_id must be numeric"), "Invalid request")
				return
			}
			orders, err := svc.FindByUserID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch orders")
				return
			}
			respondOK(c, http.StatusOK, "Orders fetched successfully", orders)
			return
		}
		if storeID := c.Query("store_id"); storeID != "" {
			id, err := strconv.ParseUint(storeID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("store_id must be numeric"), "Invalid request")
				return
			}
			orders, err := svc.FindByStoreID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch orders")
				return
			}
			respondOK(c, http.StatusOK, "Orders fetched successfully", orders)
			return
		}
		orders, err := svc.FindAll()
		if err != nil {
			respondError(c, err, "Failed to fetch orders")
			return
		}
		respondOK(c, http.StatusOK, "Orders fetched successfully", orders)
	}
}

// UpdateOrderHandler applies a partial update to an order
func UpdateOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("order id must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateOrderInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid order payload"), "Invalid request")
			return
		}
		order, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update order")
			return
		}
		respondOK(c, http.StatusOK, "Order updated successfully", order)
	}
}

// DeleteOrderHandler removes an order and its items
func DeleteOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("order id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete order")
			return
		}
		respondOK(c, http.StatusOK, "Order deleted successfully", nil)
	}
}

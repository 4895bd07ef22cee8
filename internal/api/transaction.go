package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateTransactionStatusRequest moves a transaction through its lifecycle
type UpdateTransactionStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// CreateTransactionHandler records a payment attempt against an order
func CreateTransactionHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateTransactionInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("transaction_id, order_id, user_id, store_id, amount and payment_method are required"), "Invalid request")
			return
		}
		txn, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create transaction")
			return
		}
		respondOK(c, http.StatusCreated, "Transaction created successfully", txn)
	}
}

// GetTransactionHandler returns one transaction
func GetTransactionHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("transaction id must be numeric"), "Invalid request")
			return
		}
		txn, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch transaction")
			return
		}
		respondOK(c, http.StatusOK, "Transaction fetched successfully", txn)
	}
}

// ListTransactionsHandler returns transactions filtered by order or user
func ListTransactionsHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if orderID := c.Query("order_id"); orderID != "" {
			id, err := strconv.ParseUint(orderID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("order_id must be numeric"), "Invalid request")
				return
			}
			txns, err := svc.FindByOrderID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch transactions")
				return
			}
			respondOK(c, http.StatusOK, "Transactions fetched successfully", txns)
			return
		}
		if userID := c.Query("user_id"); userID != "" {
			id, err := strconv.ParseUint(userID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("user_id must be numeric"), "Invalid request")
				return
			}
			txns, err := svc.FindByUserID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch transactions")
				return
			}
			respondOK(c, http.StatusOK, "Transactions fetched successfully", txns)
			return
		}
		respondError(c, apperr.Validation("order_id or user_id query parameter is required"), "Invalid request")
	}
}

// UpdateTransactionStatusHandler transitions a transaction's status
func UpdateTransactionStatusHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("transaction id must be numeric"), "Invalid request")
			return
		}
		var req UpdateTransactionStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("status is required"), "Invalid request")
			return
		}
		txn, err := svc.UpdateStatus(uint(id), req.Status, req.Notes)
		if err != nil {
			respondError(c, err, "Failed to update transaction")
			return
		}
		respondOK(c, http.StatusOK, "Transaction updated successfully", txn)
	}
}

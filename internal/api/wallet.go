package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"
	"marketplace/internal/service"
	"marketplace/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest creates a wallet for a user
type CreateWalletRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// CreditDebitRequest applies one ledger entry to a wallet
type CreditDebitRequest struct {
	WalletID      uint            `json:"wallet_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	ReferenceType *string         `json:"reference_type"`
	ReferenceID   *uint           `json:"reference_id"`
	Description   *string         `json:"description"`
}

func walletCacheKey(userID uint) string {
	return "wallet:user:" + strconv.Itoa(int(userID))
}

// CreateWalletHandler creates a wallet (one per user)
func CreateWalletHandler(svc *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateWalletRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("user_id is required"), "Invalid request")
			return
		}
		wallet, err := svc.Create(req.UserID)
		if err != nil {
			respondError(c, err, "Failed to create wallet")
			return
		}
		respondOK(c, http.StatusCreated, "Wallet created successfully", wallet)
	}
}

// GetWalletByUserHandler returns the user's wallet, creating it on first
// access. Reads go through the cache; creation invalidates nothing since
// the key was absent.
func GetWalletByUserHandler(svc *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("user_id query parameter must be numeric"), "Invalid request")
			return
		}
		ctx := context.Background()
		var cached domain.Wallet
		if found, cerr := utils.GetCache(ctx, rdb, walletCacheKey(uint(userID)), &cached); cerr == nil && found {
			respondOK(c, http.StatusOK, "Wallet fetched successfully", cached)
			return
		}
		wallet, err := svc.GetOrCreateByUserID(uint(userID))
		if err != nil {
			respondError(c, err, "Failed to fetch wallet")
			return
		}
		_ = utils.SetCache(ctx, rdb, walletCacheKey(wallet.UserID), wallet, 60*time.Second)
		respondOK(c, http.StatusOK, "Wallet fetched successfully", wallet)
	}
}

// GetWalletHandler returns a wallet by id
func GetWalletHandler(svc *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("wallet id must be numeric"), "Invalid request")
			return
		}
		wallet, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch wallet")
			return
		}
		respondOK(c, http.StatusOK, "Wallet fetched successfully", wallet)
	}
}

// applyEntryHandler is shared by the credit and debit endpoints
func applyEntryHandler(svc *service.WalletService, rdb *redis.Client, direction string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreditDebitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("wallet_id and amount are required"), "Invalid request")
			return
		}
		wallet, err := svc.ApplyEntry(req.WalletID, req.Amount, direction, service.EntryInput{
			ReferenceType: req.ReferenceType,
			ReferenceID:   req.ReferenceID,
			Description:   req.Description,
		})
		if err != nil {
			respondError(c, err, "Failed to update wallet")
			return
		}
		// Drop the stale cached balance
		_ = utils.DeleteCache(context.Background(), rdb, walletCacheKey(wallet.UserID))
		message := "Wallet credited successfully"
		if direction == domain.WalletTxDebit {
			message = "Wallet debited successfully"
		}
		respondOK(c, http.StatusOK, message, wallet)
	}
}

// CreditWalletHandler adds money to a wallet
func CreditWalletHandler(svc *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return applyEntryHandler(svc, rdb, domain.WalletTxCredit)
}

// DebitWalletHandler deducts money from a wallet
func DebitWalletHandler(svc *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return applyEntryHandler(svc, rdb, domain.WalletTxDebit)
}

// WalletTransactionsHandler returns a wallet's ledger, newest first
func WalletTransactionsHandler(svc *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("wallet id must be numeric"), "Invalid request")
			return
		}
		entries, err := svc.Transactions(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch transactions")
			return
		}
		respondOK(c, http.StatusOK, "Transactions fetched successfully", entries)
	}
}

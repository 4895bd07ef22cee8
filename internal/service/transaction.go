package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TransactionService tracks external payment records against orders,
// separate from the wallet ledger
type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// CreateTransactionInput is the payload for recording an order payment
type CreateTransactionInput struct {
	TransactionID string          `json:"transaction_id" binding:"required"`
	OrderID       uint            `json:"order_id" binding:"required"`
	UserID        uint            `json:"user_id" binding:"required"`
	StoreID       uint            `json:"store_id" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Status        *string         `json:"status"`
	Notes         *string         `json:"notes"`
}

var validTxStatuses = map[string]bool{
	domain.TxPending:   true,
	domain.TxCompleted: true,
	domain.TxFailed:    true,
	domain.TxRefunded:  true,
	domain.TxCancelled: true,
}

func (s *TransactionService) Create(input CreateTransactionInput) (*domain.OrderTransaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("amount must be greater than zero")
	}
	status := domain.TxPending
	if input.Status != nil {
		if !validTxStatuses[*input.Status] {
			return nil, apperr.Validation("invalid transaction status")
		}
		status = *input.Status
	}
	tx := domain.OrderTransaction{
		TransactionID: input.TransactionID,
		OrderID:       input.OrderID,
		UserID:        input.UserID,
		StoreID:       input.StoreID,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
		Status:        status,
		Notes:         input.Notes,
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	logrus.WithFields(logrus.Fields{
		"transaction_id": tx.TransactionID,
		"order_id":       tx.OrderID,
		"amount":         tx.Amount.String(),
		"status":         tx.Status,
	}).Info("Order transaction recorded")
	return &tx, nil
}

func (s *TransactionService) FindByID(id uint) (*domain.OrderTransaction, error) {
	var tx domain.OrderTransaction
	if err := s.db.Preload("Order").Preload("User").Preload("Store").
		First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Transaction not found")
		}
		return nil, apperr.Internal(err)
	}
	return &tx, nil
}

func (s *TransactionService) FindByOrderID(orderID uint) ([]domain.OrderTransaction, error) {
	var txs []domain.OrderTransaction
	if err := s.db.Where("order_id = ?", orderID).
		Order("created_at desc").Find(&txs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return txs, nil
}

func (s *TransactionService) FindByUserID(userID uint) ([]domain.OrderTransaction, error) {
	var txs []domain.OrderTransaction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&txs).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return txs, nil
}

// UpdateStatus moves a payment record through its lifecycle
func (s *TransactionService) UpdateStatus(id uint, status string, notes *string) (*domain.OrderTransaction, error) {
	if !validTxStatuses[status] {
		return nil, apperr.Validation("invalid transaction status")
	}
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	updates := map[string]any{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}
	if err := s.db.Model(&domain.OrderTransaction{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return s.FindByID(id)
}

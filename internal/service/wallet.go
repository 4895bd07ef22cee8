package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletService maintains per-user balances with an append-only ledger.
// The wallet balance is only ever mutated through ApplyEntry, inside a
// transaction that also writes the ledger row.
type WalletService struct {
	db *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// Create creates a zero-balance wallet for a user. Fails with a conflict
// if the user already has one.
func (s *WalletService) Create(userID uint) (*domain.Wallet, error) {
	var existing domain.Wallet
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("User already has a wallet")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	wallet := domain.Wallet{UserID: userID, Balance: decimal.Zero}
	if err := s.db.Create(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("User already has a wallet")
		}
		return nil, apperr.Internal(err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"wallet_id": wallet.ID,
	}).Info("Wallet created")
	return &wallet, nil
}

// GetOrCreateByUserID returns the user's wallet, creating it on first
// access. Concurrent first-access calls are resolved by the unique index
// on user_id: the loser of the race re-fetches the winner's row.
func (s *WalletService) GetOrCreateByUserID(userID uint) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.db.Where("user_id = ?", userID).First(&wallet).Error
	if err == nil {
		return &wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	created, err := s.Create(userID)
	if err == nil {
		return created, nil
	}
	if apperr.KindOf(err) == apperr.KindConflict {
		// Lost the creation race; the wallet exists now
		if ferr := s.db.Where("user_id = ?", userID).First(&wallet).Error; ferr != nil {
			return nil, apperr.Internal(ferr)
		}
		return &wallet, nil
	}
	return nil, err
}

// FindByID returns a wallet by primary key
func (s *WalletService) FindByID(id uint) (*domain.Wallet, error) {
	var wallet domain.Wallet
	if err := s.db.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Wallet not found")
		}
		return nil, apperr.Internal(err)
	}
	return &wallet, nil
}

// EntryInput carries the optional metadata attached to a ledger entry
type EntryInput struct {
	ReferenceType *string
	ReferenceID   *uint
	Description   *string
}

// ApplyEntry applies one credit or debit to a wallet as a single atomic
// transaction: the wallet row is locked, the balance checked, the ledger
// row inserted with its balance_after snapshot, and the balance updated.
// Any failure rolls back the whole operation.
func (s *WalletService) ApplyEntry(walletID uint, amount decimal.Decimal, direction string, input EntryInput) (*domain.Wallet, error) {
	if direction != domain.WalletTxCredit && direction != domain.WalletTxDebit {
		return nil, apperr.Validation("type must be credit or debit")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("amount must be greater than zero")
	}

	var wallet domain.Wallet
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Row lock serializes concurrent entries against the same wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&wallet, walletID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Wallet not found")
			}
			return err
		}

		signed := amount
		if direction == domain.WalletTxDebit {
			signed = amount.Neg()
			if amount.GreaterThan(wallet.Balance) {
				return apperr.InsufficientBalance("Insufficient wallet balance")
			}
		}
		balanceAfter := wallet.Balance.Add(signed)
		if balanceAfter.IsNegative() {
			return apperr.InsufficientBalance("Insufficient wallet balance")
		}

		entry := domain.WalletTransaction{
			WalletID:      walletID,
			Amount:        signed,
			Type:          direction,
			ReferenceType: input.ReferenceType,
			ReferenceID:   input.ReferenceID,
			Description:   input.Description,
			BalanceAfter:  balanceAfter,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Wallet{}).Where("id = ?", walletID).
			Update("balance", balanceAfter).Error; err != nil {
			return err
		}
		wallet.Balance = balanceAfter
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) != apperr.KindInternal {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"wallet_id": walletID,
			"type":      direction,
			"amount":    amount.String(),
			"error":     err.Error(),
		}).Error("Wallet entry failed")
		return nil, apperr.Internal(err)
	}

	logrus.WithFields(logrus.Fields{
		"wallet_id":     walletID,
		"type":          direction,
		"amount":        amount.String(),
		"balance_after": wallet.Balance.String(),
	}).Info("Wallet entry applied")
	return &wallet, nil
}

// Credit adds money to a wallet
func (s *WalletService) Credit(walletID uint, amount decimal.Decimal, input EntryInput) (*domain.Wallet, error) {
	return s.ApplyEntry(walletID, amount, domain.WalletTxCredit, input)
}

// Debit deducts money from a wallet; fails if the balance is insufficient
func (s *WalletService) Debit(walletID uint, amount decimal.Decimal, input EntryInput) (*domain.Wallet, error) {
	return s.ApplyEntry(walletID, amount, domain.WalletTxDebit, input)
}

// Transactions returns the wallet's ledger entries, newest first
func (s *WalletService) Transactions(walletID uint) ([]domain.WalletTransaction, error) {
	if _, err := s.FindByID(walletID); err != nil {
		return nil, err
	}
	var entries []domain.WalletTransaction
	if err := s.db.Where("wallet_id = ?", walletID).
		Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return entries, nil
}

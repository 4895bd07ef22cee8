package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet Model — one per user, balance mutated only through ledger entries
type Wallet struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }

// Wallet transaction directions
const (
	WalletTxCredit = "credit"
	WalletTxDebit  = "debit"
)

// WalletTransaction Model — append-only ledger entry.
// Amount is signed: positive for credit, negative for debit.
type WalletTransaction struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	WalletID      uint            `gorm:"index;not null" json:"wallet_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type          string          `gorm:"size:20;not null" json:"type"`
	ReferenceType *string         `gorm:"size:50" json:"reference_type"` // e.g. order, deposit, withdrawal, refund
	ReferenceID   *uint           `json:"reference_id"`
	Description   *string         `gorm:"type:text" json:"description"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(12,2)" json:"balance_after"` // Balance snapshot after this entry
	CreatedAt     time.Time       `json:"created_at"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }

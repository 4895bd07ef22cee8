package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order transaction statuses
const (
	TxPending   = "pending"
	TxCompleted = "completed"
	TxFailed    = "failed"
	TxRefunded  = "refunded"
	TxCancelled = "cancelled"
)

// OrderTransaction Model — external payment record against an order,
// distinct from the wallet ledger
type OrderTransaction struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TransactionID string          `gorm:"size:255;not null" json:"transaction_id"` // Payment gateway reference
	OrderID       uint            `gorm:"index;not null" json:"order_id"`
	UserID        uint            `gorm:"index;not null" json:"user_id"`
	StoreID       uint            `gorm:"index;not null" json:"store_id"`
	PaymentMethod string          `gorm:"size:50;not null" json:"payment_method"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status        string          `gorm:"size:20;default:pending" json:"status"`
	Notes         *string         `gorm:"type:text" json:"notes"`
	Order         *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	User          *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Store         *Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (OrderTransaction) TableName() string { return "order_transactions" }

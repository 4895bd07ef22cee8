package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment methods
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
	PaymentWallet = "wallet"
	PaymentOther  = "other"
)

// Order Model — created atomically with its items
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	StoreID       uint            `gorm:"index;not null" json:"store_id"`
	UserID        uint            `gorm:"index;not null" json:"user_id"`
	Status        string          `gorm:"size:20;default:pending" json:"status"`
	IsPaid        bool            `gorm:"default:false" json:"is_paid"`
	TotalBill     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_bill"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"discount"`
	PaymentMethod *string         `gorm:"size:50" json:"payment_method"`
	AddressID     *uint           `json:"address_id"`
	Store         *Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	User          *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Address       *Address        `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// OrderItem Model — price is copied at order time, not referenced live
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (OrderItem) TableName() string { return "order_items" }

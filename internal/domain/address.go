package domain

import "time"

// Address Model — a user's saved delivery address
type Address struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	Title     string    `gorm:"size:100;not null" json:"title"` // e.g. "Home", "Office"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Address) TableName() string { return "user_addresses" }

package domain

import "time"

// Review Model — one review per (product, user) pair, rating 1-5
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_product_user" json:"product_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_product_user" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }

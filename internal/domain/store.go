package domain

import "time"

// Store Model
type Store struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MarketID   uint      `gorm:"index;not null" json:"market_id"`
	StoreName  string    `gorm:"size:255;not null" json:"store_name"`
	VendorID   uint      `gorm:"index;not null" json:"vendor_id"`
	Logo       *string   `gorm:"size:500" json:"logo"`
	CoverImage *string   `gorm:"size:500" json:"cover_image"`
	OpenTime   *string   `gorm:"size:20" json:"open_time"`   // e.g. "09:00"
	ClosedTime *string   `gorm:"size:20" json:"closed_time"` // e.g. "18:00"
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	Market     *Market   `gorm:"foreignKey:MarketID" json:"market,omitempty"`
	Vendor     *User     `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Store) TableName() string { return "stores" }

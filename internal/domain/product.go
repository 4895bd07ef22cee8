package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product Model.
// RatingCount and RatingTotal are derived from reviews and recomputed on
// every review mutation, never incremented in place.
type Product struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	CategoryID       uint            `gorm:"index;not null" json:"category_id"`
	StoreID          uint            `gorm:"index;not null" json:"store_id"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity         int             `gorm:"default:0" json:"quantity"`
	Description      *string         `gorm:"type:text" json:"description"`
	Purity           *string         `gorm:"size:50" json:"purity"`          // e.g. "100%"
	Unit             *string         `gorm:"size:50" json:"unit"`            // e.g. kg, piece, litre
	MainImage        *string         `gorm:"size:500" json:"main_image"`
	AdditionalImages *string         `gorm:"type:text" json:"additional_images"` // Comma-separated paths
	RatingCount      int             `gorm:"default:0" json:"rating_count"`
	RatingTotal      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"rating_total"`
	AvgRating        decimal.Decimal `gorm:"-" json:"average_rating"` // Derived, set on read
	Category         *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Store            *Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// AverageRating returns rating_total / rating_count rounded to 2 decimal
// places, or zero when the product has no reviews.
func (p *Product) AverageRating() decimal.Decimal {
	if p.RatingCount == 0 {
		return decimal.Zero
	}
	return p.RatingTotal.Div(decimal.NewFromInt(int64(p.RatingCount))).Round(2)
}

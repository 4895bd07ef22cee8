package domain

import "time"

// Kyc Model — identity verification documents
type Kyc struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BVN       *string   `gorm:"size:500" json:"bvn"`       // Path/URL to BVN document
	NinFront  *string   `gorm:"size:500" json:"nin_front"` // Path/URL to NIN front image
	NinBack   *string   `gorm:"size:500" json:"nin_back"`  // Path/URL to NIN back image
	BVNNumber *string   `gorm:"size:20" json:"bvn_number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Kyc) TableName() string { return "kyc" }

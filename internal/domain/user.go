package domain

import "time"

// User roles
const (
	RoleUser              = "user"
	RoleVendor            = "vendor"
	RoleRap               = "rap"
	RoleSuperAdmin        = "super_admin"
	RoleOrganizationAdmin = "organization_admin"
	RoleBranchAdmin       = "branch_admin"
)

// User Model
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone          string     `gorm:"size:50" json:"phone"`
	Password       string     `gorm:"size:255;not null" json:"-"` // Bcrypt hash, never serialized
	Role           string     `gorm:"size:50;default:user" json:"role"`
	OrganizationID *uint      `json:"organization_id,omitempty"` // Set for organization admins
	ShopID         *uint      `json:"shop_id,omitempty"`         // Set for branch admins
	OTP            *string    `gorm:"size:6" json:"-"`
	OTPExpiry      *time.Time `json:"-"`
	Profile        *string    `gorm:"size:500" json:"profile,omitempty"`
	IsVerified     bool       `gorm:"default:false" json:"is_verified"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

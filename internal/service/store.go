package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StoreService is CRUD over vendor stores plus admin approval
type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// CreateStoreInput is the payload for creating a store
type CreateStoreInput struct {
	MarketID   uint    `json:"market_id" binding:"required"`
	StoreName  string  `json:"store_name" binding:"required"`
	VendorID   uint    `json:"vendor_id" binding:"required"`
	Logo       *string `json:"logo"`
	CoverImage *string `json:"cover_image"`
	OpenTime   *string `json:"open_time"`
	ClosedTime *string `json:"closed_time"`
}

func (s *StoreService) Create(input CreateStoreInput) (*domain.Store, error) {
	store := domain.Store{
		MarketID:   input.MarketID,
		StoreName:  input.StoreName,
		VendorID:   input.VendorID,
		Logo:       input.Logo,
		CoverImage: input.CoverImage,
		OpenTime:   input.OpenTime,
		ClosedTime: input.ClosedTime,
	}
	if err := s.db.Create(&store).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	logrus.WithFields(logrus.Fields{
		"store_id":  store.ID,
		"vendor_id": store.VendorID,
	}).Info("Store created")
	return &store, nil
}

func (s *StoreService) FindByID(id uint) (*domain.Store, error) {
	var store domain.Store
	if err := s.db.Preload("Market").Preload("Vendor").First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Store not found")
		}
		return nil, apperr.Internal(err)
	}
	return &store, nil
}

func (s *StoreService) FindAll() ([]domain.Store, error) {
	var stores []domain.Store
	if err := s.db.Preload("Market").Order("store_name asc").Find(&stores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return stores, nil
}

func (s *StoreService) FindByMarketID(marketID uint) ([]domain.Store, error) {
	var stores []domain.Store
	if err := s.db.Where("market_id = ?", marketID).
		Order("store_name asc").Find(&stores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return stores, nil
}

func (s *StoreService) FindByVendorID(vendorID uint) ([]domain.Store, error) {
	var stores []domain.Store
	if err := s.db.Where("vendor_id = ?", vendorID).
		Order("store_name asc").Find(&stores).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return stores, nil
}

// UpdateStoreInput carries the mutable store fields; nil means unchanged
type UpdateStoreInput struct {
	MarketID   *uint   `json:"market_id"`
	StoreName  *string `json:"store_name"`
	Logo       *string `json:"logo"`
	CoverImage *string `json:"cover_image"`
	OpenTime   *string `json:"open_time"`
	ClosedTime *string `json:"closed_time"`
}

func (s *StoreService) Update(id uint, input UpdateStoreInput) (*domain.Store, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if input.MarketID != nil {
		updates["market_id"] = *input.MarketID
	}
	if input.StoreName != nil {
		updates["store_name"] = *input.StoreName
	}
	if input.Logo != nil {
		updates["logo"] = *input.Logo
	}
	if input.CoverImage != nil {
		updates["cover_image"] = *input.CoverImage
	}
	if input.OpenTime != nil {
		updates["open_time"] = *input.OpenTime
	}
	if input.ClosedTime != nil {
		updates["closed_time"] = *input.ClosedTime
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.Store{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.FindByID(id)
}

// Approve marks a store as admin-approved. When requiredOrgID is set (an
// organization admin came through the shop guard) the store's vendor must
// belong to that organization.
func (s *StoreService) Approve(id uint, requiredOrgID *uint) (*domain.Store, error) {
	store, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if requiredOrgID != nil {
		if store.Vendor == nil || store.Vendor.OrganizationID == nil ||
			*store.Vendor.OrganizationID != *requiredOrgID {
			return nil, apperr.Forbidden("Store does not belong to your organization")
		}
	}
	if err := s.db.Model(&domain.Store{}).Where("id = ?", id).
		Update("is_approved", true).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	store.IsApproved = true
	logrus.WithField("store_id", id).Info("Store approved")
	return store, nil
}

func (s *StoreService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&domain.Store{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"gorm.io/gorm"
)

// AddressService is plain CRUD over a user's saved addresses
type AddressService struct {
	db *gorm.DB
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

// CreateAddressInput is the payload for creating an address
type CreateAddressInput struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

func (s *AddressService) Create(input CreateAddressInput) (*domain.Address, error) {
	address := domain.Address{
		UserID:  input.UserID,
		Phone:   input.Phone,
		Address: input.Address,
		Title:   input.Title,
	}
	if err := s.db.Create(&address).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &address, nil
}

func (s *AddressService) FindByID(id uint) (*domain.Address, error) {
	var address domain.Address
	if err := s.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Address not found")
		}
		return nil, apperr.Internal(err)
	}
	return &address, nil
}

func (s *AddressService) FindByUserID(userID uint) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&addresses).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return addresses, nil
}

// UpdateAddressInput carries the mutable address fields; nil means unchanged
type UpdateAddressInput struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Title   *string `json:"title"`
}

func (s *AddressService) Update(id uint, input UpdateAddressInput) (*domain.Address, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.Address{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.FindByID(id)
}

func (s *AddressService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&domain.Address{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

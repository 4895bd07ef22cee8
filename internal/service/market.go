package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"gorm.io/gorm"
)

// MarketService is plain CRUD over markets
type MarketService struct {
	db *gorm.DB
}

func NewMarketService(db *gorm.DB) *MarketService {
	return &MarketService{db: db}
}

// CreateMarketInput is the payload for creating a market
type CreateMarketInput struct {
	Name        string  `json:"name" binding:"required"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (s *MarketService) Create(input CreateMarketInput) (*domain.Market, error) {
	market := domain.Market{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
	}
	if err := s.db.Create(&market).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &market, nil
}

func (s *MarketService) FindByID(id uint) (*domain.Market, error) {
	var market domain.Market
	if err := s.db.First(&market, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Market not found")
		}
		return nil, apperr.Internal(err)
	}
	return &market, nil
}

func (s *MarketService) FindAll() ([]domain.Market, error) {
	var markets []domain.Market
	if err := s.db.Order("name asc").Find(&markets).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return markets, nil
}

// UpdateMarketInput carries the mutable market fields; nil means unchanged
type UpdateMarketInput struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (s *MarketService) Update(id uint, input UpdateMarketInput) (*domain.Market, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.Market{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.FindByID(id)
}

func (s *MarketService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&domain.Market{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

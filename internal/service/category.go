package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"gorm.io/gorm"
)

// CategoryService is plain CRUD over product categories
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CreateCategoryInput is the payload for creating a category
type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
}

func (s *CategoryService) Create(input CreateCategoryInput) (*domain.Category, error) {
	category := domain.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Image:       input.Image,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &category, nil
}

func (s *CategoryService) FindByID(id uint) (*domain.Category, error) {
	var category domain.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category not found")
		}
		return nil, apperr.Internal(err)
	}
	return &category, nil
}

func (s *CategoryService) FindAll() ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

// UpdateCategoryInput carries the mutable category fields; nil means unchanged
type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Image       *string `json:"image"`
}

func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*domain.Category, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Icon != nil {
		updates["icon"] = *input.Icon
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.Category{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.FindByID(id)
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&domain.Category{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

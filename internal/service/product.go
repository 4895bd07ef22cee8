package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService is CRUD over products. Rating aggregates on a product
// are owned by ReviewService and only read here.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProductInput is the payload for creating a product
type CreateProductInput struct {
	Name             string          `json:"name" binding:"required"`
	CategoryID       uint            `json:"category_id" binding:"required"`
	StoreID          uint            `json:"store_id" binding:"required"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	Quantity         int             `json:"quantity"`
	Description      *string         `json:"description"`
	Purity           *string         `json:"purity"`
	Unit             *string         `json:"unit"`
	MainImage        *string         `json:"main_image"`
	AdditionalImages *string         `json:"additional_images"`
}

func (s *ProductService) Create(input CreateProductInput) (*domain.Product, error) {
	if input.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}
	product := domain.Product{
		Name:             input.Name,
		CategoryID:       input.CategoryID,
		StoreID:          input.StoreID,
		Price:            input.Price,
		Quantity:         input.Quantity,
		Description:      input.Description,
		Purity:           input.Purity,
		Unit:             input.Unit,
		MainImage:        input.MainImage,
		AdditionalImages: input.AdditionalImages,
		RatingTotal:      decimal.Zero,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &product, nil
}

// fillAverages sets the derived average_rating on each loaded product
func fillAverages(products []domain.Product) []domain.Product {
	for i := range products {
		products[i].AvgRating = products[i].AverageRating()
	}
	return products
}

func (s *ProductService) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := s.db.Preload("Category").Preload("Store").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Internal(err)
	}
	product.AvgRating = product.AverageRating()
	return &product, nil
}

func (s *ProductService) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.Preload("Category").Order("created_at desc").Find(&products).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return fillAverages(products), nil
}

func (s *ProductService) FindByStoreID(storeID uint) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.Where("store_id = ?", storeID).
		Order("created_at desc").Find(&products).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return fillAverages(products), nil
}

func (s *ProductService) FindByCategoryID(categoryID uint) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.Where("category_id = ?", categoryID).
		Order("created_at desc").Find(&products).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return fillAverages(products), nil
}

// UpdateProductInput carries the mutable product fields; nil means
// unchanged. Rating aggregates are deliberately absent: they are derived
// from reviews and never set directly.
type UpdateProductInput struct {
	Name             *string          `json:"name"`
	CategoryID       *uint            `json:"category_id"`
	Price            *decimal.Decimal `json:"price"`
	Quantity         *int             `json:"quantity"`
	Description      *string          `json:"description"`
	Purity           *string          `json:"purity"`
	Unit             *string          `json:"unit"`
	MainImage        *string          `json:"main_image"`
	AdditionalImages *string          `json:"additional_images"`
}

func (s *ProductService) Update(id uint, input UpdateProductInput) (*domain.Product, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, apperr.Validation("price must not be negative")
	}
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Purity != nil {
		updates["purity"] = *input.Purity
	}
	if input.Unit != nil {
		updates["unit"] = *input.Unit
	}
	if input.MainImage != nil {
		updates["main_image"] = *input.MainImage
	}
	if input.AdditionalImages != nil {
		updates["additional_images"] = *input.AdditionalImages
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.Product{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.FindByID(id)
}

func (s *ProductService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&domain.Product{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

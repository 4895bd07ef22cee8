package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReviewService owns reviews and keeps the product rating aggregates
// consistent with the current review rows. Aggregates are recomputed by a
// full COUNT/SUM query on every mutation rather than patched in place, so
// partial failures and concurrent writes cannot introduce drift.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReviewInput is the payload for creating a review
type CreateReviewInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	UserID    uint    `json:"user_id" binding:"required"`
	Rating    int     `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   *string `json:"comment"`
}

// ratingAggregate holds the recomputed COUNT/SUM over a product's reviews
type ratingAggregate struct {
	Count int64
	Total decimal.Decimal
}

// recomputeProductRating overwrites the product's aggregates with a fresh
// COUNT/SUM over its current reviews, inside the caller's transaction
func recomputeProductRating(tx *gorm.DB, productID uint) error {
	var agg ratingAggregate
	if err := tx.Model(&domain.Review{}).
		Select("COUNT(id) AS count, COALESCE(SUM(rating), 0) AS total").
		Where("product_id = ?", productID).
		Scan(&agg).Error; err != nil {
		return err
	}
	return tx.Model(&domain.Product{}).Where("id = ?", productID).
		Updates(map[string]any{
			"rating_count": agg.Count,
			"rating_total": agg.Total,
		}).Error
}

// Create writes the review and recomputes the product aggregates in one
// transaction. A second review for the same (product, user) pair fails
// against the unique index.
func (s *ReviewService) Create(input CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	review := domain.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("User has already reviewed this product")
			}
			return err
		}
		return recomputeProductRating(tx, input.ProductID)
	})
	if err != nil {
		if apperr.KindOf(err) != apperr.KindInternal {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}
	logrus.WithFields(logrus.Fields{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"user_id":    review.UserID,
		"rating":     review.Rating,
	}).Info("Review created")
	return &review, nil
}

// FindByID returns a review with its product and author
func (s *ReviewService) FindByID(id uint) (*domain.Review, error) {
	var review domain.Review
	if err := s.db.Preload("Product").Preload("User").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Review not found")
		}
		return nil, apperr.Internal(err)
	}
	return &review, nil
}

// FindByProductID returns a product's reviews, newest first
func (s *ReviewService) FindByProductID(productID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := s.db.Preload("User").Where("product_id = ?", productID).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return reviews, nil
}

// FindByUserID returns a user's reviews, newest first
func (s *ReviewService) FindByUserID(userID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := s.db.Preload("Product").Where("user_id = ?", userID).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return reviews, nil
}

// UpdateReviewInput carries the mutable review fields; nil means unchanged
type UpdateReviewInput struct {
	Rating  *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment"`
}

// Update mutates a review and recomputes the product aggregates in the
// same transaction
func (s *ReviewService) Update(id uint, input UpdateReviewInput) (*domain.Review, error) {
	var review domain.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Review not found")
		}
		return nil, apperr.Internal(err)
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	updates := map[string]any{}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.Comment != nil {
		updates["comment"] = *input.Comment
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&domain.Review{}).Where("id = ?", id).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		return recomputeProductRating(tx, review.ProductID)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.FindByID(id)
}

// Delete removes a review and recomputes the product aggregates in the
// same transaction
func (s *ReviewService) Delete(id uint) error {
	var review domain.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Review not found")
		}
		return apperr.Internal(err)
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Review{}, id).Error; err != nil {
			return err
		}
		return recomputeProductRating(tx, review.ProductID)
	})
	if err != nil {
		return apperr.Internal(err)
	}
	logrus.WithFields(logrus.Fields{
		"review_id":  id,
		"product_id": review.ProductID,
	}).Info("Review deleted")
	return nil
}

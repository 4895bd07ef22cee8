package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService serves administrative user operations
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindByID returns a user by primary key
func (s *UserService) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// FindByEmail returns a user by unique email
func (s *UserService) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// List returns a page of users with the total count
func (s *UserService) List(page, pageSize int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	var total int64
	if err := s.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	var users []domain.User
	offset := (page - 1) * pageSize
	if err := s.db.Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return users, total, nil
}

// FindByOrganizationID returns every user attached to an organization
func (s *UserService) FindByOrganizationID(orgID uint) ([]domain.User, error) {
	var users []domain.User
	if err := s.db.Where("organization_id = ?", orgID).Find(&users).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// SetActive toggles whether a user may use the platform
func (s *UserService) SetActive(id uint, active bool) (*domain.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&domain.User{}).Where("id = ?", id).
		Update("is_active", active).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	user.IsActive = active
	logrus.WithFields(logrus.Fields{
		"user_id":   id,
		"is_active": active,
	}).Info("User activation changed")
	return user, nil
}

// Delete removes a user account
func (s *UserService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&domain.User{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

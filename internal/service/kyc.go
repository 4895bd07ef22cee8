package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"gorm.io/gorm"
)

// KycService is plain CRUD over KYC document records
type KycService struct {
	db *gorm.DB
}

func NewKycService(db *gorm.DB) *KycService {
	return &KycService{db: db}
}

// KycInput is the payload for creating or updating a KYC record
type KycInput struct {
	BVN       *string `json:"bvn"`
	NinFront  *string `json:"nin_front"`
	NinBack   *string `json:"nin_back"`
	BVNNumber *string `json:"bvn_number"`
}

func (s *KycService) Create(input KycInput) (*domain.Kyc, error) {
	kyc := domain.Kyc{
		BVN:       input.BVN,
		NinFront:  input.NinFront,
		NinBack:   input.NinBack,
		BVNNumber: input.BVNNumber,
	}
	if err := s.db.Create(&kyc).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &kyc, nil
}

func (s *KycService) FindByID(id uint) (*domain.Kyc, error) {
	var kyc domain.Kyc
	if err := s.db.First(&kyc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("KYC record not found")
		}
		return nil, apperr.Internal(err)
	}
	return &kyc, nil
}

func (s *KycService) FindAll() ([]domain.Kyc, error) {
	var records []domain.Kyc
	if err := s.db.Order("created_at desc").Find(&records).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return records, nil
}

func (s *KycService) Update(id uint, input KycInput) (*domain.Kyc, error) {
	if _, err := s.FindByID(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if input.BVN != nil {
		updates["bvn"] = *input.BVN
	}
	if input.NinFront != nil {
		updates["nin_front"] = *input.NinFront
	}
	if input.NinBack != nil {
		updates["nin_back"] = *input.NinBack
	}
	if input.BVNNumber != nil {
		updates["bvn_number"] = *input.BVNNumber
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.Kyc{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.FindByID(id)
}

func (s *KycService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&domain.Kyc{}, id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

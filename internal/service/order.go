package service

import (
	"errors"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderService creates orders together with their line items as one
// atomic unit and serves order reads with resolved references.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderItemInput is one line of a new order. Price is captured here and
// stored on the item so later product price changes never alter past orders.
type OrderItemInput struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gte=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// CreateOrderInput is the payload for creating an order with items
type CreateOrderInput struct {
	StoreID       uint             `json:"store_id" binding:"required"`
	UserID        uint             `json:"user_id" binding:"required"`
	TotalBill     decimal.Decimal  `json:"total_bill" binding:"required"`
	Discount      *decimal.Decimal `json:"discount"`
	PaymentMethod *string          `json:"payment_method"`
	AddressID     *uint            `json:"address_id"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// Create inserts the order row and all of its items inside one
// transaction. No order persists without its items and no items without
// their order.
func (s *OrderService) Create(input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperr.Validation("item quantity must be at least 1")
		}
		if item.Price.IsNegative() {
			return nil, apperr.Validation("item price must not be negative")
		}
	}

	discount := decimal.Zero
	if input.Discount != nil {
		discount = *input.Discount
	}
	order := domain.Order{
		StoreID:       input.StoreID,
		UserID:        input.UserID,
		Status:        domain.OrderPending,
		IsPaid:        false,
		TotalBill:     input.TotalBill,
		Discount:      discount,
		PaymentMethod: input.PaymentMethod,
		AddressID:     input.AddressID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range input.Items {
			orderItem := domain.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": input.StoreID,
			"user_id":  input.UserID,
			"items":    len(input.Items),
			"error":    err.Error(),
		}).Error("Order creation failed")
		return nil, apperr.Internal(err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"store_id": order.StoreID,
		"user_id":  order.UserID,
		"items":    len(input.Items),
	}).Info("Order created")
	return s.FindByID(order.ID)
}

// withRelations preloads the references needed for response construction
func (s *OrderService) withRelations() *gorm.DB {
	return s.db.
		Preload("Store").
		Preload("User").
		Preload("Address").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id asc") }).
		Preload("Items.Product")
}

// FindByID returns an order with its items and resolved references
func (s *OrderService) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := s.withRelations().First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal(err)
	}
	return &order, nil
}

// FindAll returns all orders, newest first
func (s *OrderService) FindAll() ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.withRelations().Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// FindByUserID returns a user's orders, newest first
func (s *OrderService) FindByUserID(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.withRelations().Where("user_id = ?", userID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// FindByStoreID returns a store's orders, newest first
func (s *OrderService) FindByStoreID(storeID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.withRelations().Where("store_id = ?", storeID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// UpdateOrderInput carries the mutable order fields; nil means unchanged
type UpdateOrderInput struct {
	Status        *string          `json:"status"`
	IsPaid        *bool            `json:"is_paid"`
	TotalBill     *decimal.Decimal `json:"total_bill"`
	Discount      *decimal.Decimal `json:"discount"`
	PaymentMethod *string          `json:"payment_method"`
	AddressID     *uint            `json:"address_id"`
}

// Update applies a partial update to an order
func (s *OrderService) Update(id uint, input UpdateOrderInput) (*domain.Order, error) {
	var order domain.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Internal(err)
	}
	updates := map[string]any{}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.IsPaid != nil {
		updates["is_paid"] = *input.IsPaid
	}
	if input.TotalBill != nil {
		updates["total_bill"] = *input.TotalBill
	}
	if input.Discount != nil {
		updates["discount"] = *input.Discount
	}
	if input.PaymentMethod != nil {
		updates["payment_method"] = *input.PaymentMethod
	}
	if input.AddressID != nil {
		updates["address_id"] = *input.AddressID
	}
	if len(updates) > 0 {
		if err := s.db.Model(&domain.Order{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.FindByID(id)
}

// Delete removes an order and its items
func (s *OrderService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, id).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

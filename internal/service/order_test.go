package service

import (
	"testing"

	"marketplace/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateRejectsEmptyItems(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.Create(CreateOrderInput{
		StoreID:   1,
		UserID:    2,
		TotalBill: decimal.NewFromInt(100),
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestOrderCreateRejectsBadItem(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.Create(CreateOrderInput{
		StoreID:   1,
		UserID:    2,
		TotalBill: decimal.NewFromInt(100),
		Items: []OrderItemInput{
			{ProductID: 3, Quantity: 0, Price: decimal.NewFromInt(10)},
		},
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Create(CreateOrderInput{
		StoreID:   1,
		UserID:    2,
		TotalBill: decimal.NewFromInt(100),
		Items: []OrderItemInput{
			{ProductID: 3, Quantity: 1, Price: decimal.NewFromInt(-10)},
		},
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestOrderCreateRollsBackWhenItemInsertFails(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewOrderService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Create(CreateOrderInput{
		StoreID:   1,
		UserID:    2,
		TotalBill: decimal.NewFromInt(100),
		Items: []OrderItemInput{
			{ProductID: 3, Quantity: 2, Price: decimal.NewFromInt(25)},
			{ProductID: 4, Quantity: 1, Price: decimal.NewFromInt(50)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateInsertsOrderAndItems(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewOrderService(db)

	// Preload order is not deterministic, so match out of order
	mock.MatchExpectationsInOrder(false)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `orders`").
		WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectExec("INSERT INTO `order_items`").
		WillReturnResult(sqlmock.NewResult(30, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .+ FROM `orders`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "user_id", "status", "total_bill"}).
			AddRow(20, 1, 2, "pending", "100"))
	mock.ExpectQuery("SELECT .+ FROM `stores`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Corner Shop"))
	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Asha"))
	mock.ExpectQuery("SELECT .+ FROM `order_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(30, 20, 3, 2, "50"))
	mock.ExpectQuery("SELECT .+ FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow(3, "Rice 5kg", "50"))

	order, err := svc.Create(CreateOrderInput{
		StoreID:   1,
		UserID:    2,
		TotalBill: decimal.NewFromInt(100),
		Items: []OrderItemInput{
			{ProductID: 3, Quantity: 2, Price: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(20), order.ID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, uint(3), order.Items[0].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFindByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewOrderService(db)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery("SELECT .+ FROM `orders`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.FindByID(99)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestOrderDeleteRemovesItemsFirst(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewOrderService(db)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery("SELECT .+ FROM `orders`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "user_id", "status", "total_bill"}).
			AddRow(20, 1, 2, "pending", "100"))
	mock.ExpectQuery("SELECT .+ FROM `stores`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("SELECT .+ FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery("SELECT .+ FROM `order_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id"}))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `order_items`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `orders`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(20))
	assert.NoError(t, mock.ExpectationsWereMet())
}

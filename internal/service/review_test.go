package service

import (
	"testing"

	"marketplace/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestReviewCreateRecomputesProductRating(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReviewService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reviews`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	// Aggregates are overwritten from a fresh COUNT/SUM, not incremented
	mock.ExpectQuery("SELECT COUNT.+ FROM `reviews`").
		WillReturnRows(sqlmock.NewRows([]string{"count", "total"}).AddRow(3, "12"))
	mock.ExpectExec("UPDATE `products` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	review, err := svc.Create(CreateReviewInput{
		ProductID: 5,
		UserID:    7,
		Rating:    4,
		Comment:   strPtr("solid"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), review.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewCreateDuplicateUserConflict(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReviewService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reviews`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := svc.Create(CreateReviewInput{ProductID: 5, UserID: 7, Rating: 4})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewCreateRejectsOutOfRangeRating(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewReviewService(db)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(CreateReviewInput{ProductID: 5, UserID: 7, Rating: rating})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestReviewCreateRollsBackWhenRecomputeFails(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReviewService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reviews`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectQuery("SELECT COUNT.+ FROM `reviews`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Create(CreateReviewInput{ProductID: 5, UserID: 7, Rating: 4})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewDeleteRecomputesProductRating(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReviewService(db)

	mock.ExpectQuery("SELECT .+ FROM `reviews`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "user_id", "rating"}).
			AddRow(10, 5, 7, 4))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `reviews`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT.+ FROM `reviews`").
		WillReturnRows(sqlmock.NewRows([]string{"count", "total"}).AddRow(2, "9"))
	mock.ExpectExec("UPDATE `products` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewDeleteNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewReviewService(db)

	mock.ExpectQuery("SELECT .+ FROM `reviews`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id"}))

	err := svc.Delete(99)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"testing"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walletRow(id, userID uint, balance string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "balance"}).
		AddRow(id, userID, balance)
}

func expectEntry(mock sqlmock.Sqlmock, balanceBefore string) {
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `wallets` .+FOR UPDATE").
		WillReturnRows(walletRow(1, 7, balanceBefore))
	mock.ExpectExec("INSERT INTO `wallet_transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `wallets` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestWalletCredit(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWalletService(db)

	expectEntry(mock, "100")
	wallet, err := svc.Credit(1, decimal.NewFromInt(50), EntryInput{})
	require.NoError(t, err)
	assert.Equal(t, "150", wallet.Balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletDebitWritesSignedLedgerEntry(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWalletService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `wallets` .+FOR UPDATE").
		WillReturnRows(walletRow(1, 7, "100"))
	// Ledger amount is negative for debits and balance_after is snapshotted
	mock.ExpectExec("INSERT INTO `wallet_transactions`").
		WithArgs(uint(1), "-40", domain.WalletTxDebit, nil, nil, nil, "60", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `wallets` SET").
		WithArgs("60", sqlmock.AnyArg(), uint(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	wallet, err := svc.Debit(1, decimal.NewFromInt(40), EntryInput{})
	require.NoError(t, err)
	assert.Equal(t, "60", wallet.Balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletDebitInsufficientBalanceRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWalletService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `wallets` .+FOR UPDATE").
		WillReturnRows(walletRow(1, 7, "100"))
	mock.ExpectRollback()

	_, err := svc.Debit(1, decimal.NewFromInt(150), EntryInput{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInsufficientBalance, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletEntryRejectsNonPositiveAmount(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.Credit(1, decimal.Zero, EntryInput{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Debit(1, decimal.NewFromInt(-5), EntryInput{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestWalletEntryRejectsUnknownDirection(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.ApplyEntry(1, decimal.NewFromInt(10), "transfer", EntryInput{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestWalletBalanceRunsAsCumulativeSum(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWalletService(db)

	expectEntry(mock, "0")
	wallet, err := svc.Credit(1, decimal.NewFromInt(100), EntryInput{})
	require.NoError(t, err)
	assert.Equal(t, "100", wallet.Balance.String())

	expectEntry(mock, "100")
	wallet, err = svc.Credit(1, decimal.NewFromInt(50), EntryInput{})
	require.NoError(t, err)
	assert.Equal(t, "150", wallet.Balance.String())

	expectEntry(mock, "150")
	wallet, err = svc.Debit(1, decimal.NewFromInt(30), EntryInput{})
	require.NoError(t, err)
	assert.Equal(t, "120", wallet.Balance.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletEntryNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWalletService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `wallets` .+FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance"}))
	mock.ExpectRollback()

	_, err := svc.Credit(99, decimal.NewFromInt(10), EntryInput{})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletCreateConflictWhenExists(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWalletService(db)

	mock.ExpectQuery("SELECT .+ FROM `wallets`").
		WillReturnRows(walletRow(1, 7, "0"))

	_, err := svc.Create(7)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

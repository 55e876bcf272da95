package recorder_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/recorder"
	"github.com/shaksmhd/fintech/pkg/storage/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecord(t *testing.T) {
	amount := decimal.NewFromInt(75)

	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockStore.On("RecordTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Type == models.DEBIT &&
				tx.Amount.Equal(amount) &&
				tx.AccountNumber == "2026123456" &&
				tx.Status == models.SUCCESS &&
				tx.ID != ""
		})).Return(nil)

		r := recorder.New(mockStore, testLogger())
		tx, err := r.Record(context.Background(), models.DEBIT, amount, "2026123456")

		assert.NoError(t, err)
		assert.Equal(t, models.SUCCESS, tx.Status)
		assert.NotEmpty(t, tx.ID)
		mockStore.AssertExpectations(t)
	})

	t.Run("Unique IDs", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockStore.On("RecordTransaction", mock.Anything, mock.Anything).Return(nil)

		r := recorder.New(mockStore, testLogger())
		first, err := r.Record(context.Background(), models.CREDIT, amount, "2026123456")
		assert.NoError(t, err)
		second, err := r.Record(context.Background(), models.CREDIT, amount, "2026123456")
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockStore.On("RecordTransaction", mock.Anything, mock.Anything).Return(assert.AnError)

		r := recorder.New(mockStore, testLogger())
		_, err := r.Record(context.Background(), models.CREDIT, amount, "2026123456")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record CREDIT transaction")
	})
}

func TestHistory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		expected := []models.Transaction{
			{ID: uuid.New().String(), Type: models.CREDIT},
			{ID: uuid.New().String(), Type: models.DEBIT},
		}
		mockStore := new(mocks.TransactionStore)
		mockStore.On("ListTransactionsByAccount", mock.Anything, "2026123456").Return(expected, nil)

		r := recorder.New(mockStore, testLogger())
		txs, err := r.History(context.Background(), "2026123456")

		assert.NoError(t, err)
		assert.Equal(t, expected, txs)
		mockStore.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStore := new(mocks.TransactionStore)
		mockStore.On("ListTransactionsByAccount", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		r := recorder.New(mockStore, testLogger())
		_, err := r.History(context.Background(), "2026123456")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list transactions")
	})
}

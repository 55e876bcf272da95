// Package recorder owns the append-only transaction log. It never decides
// whether a movement succeeded: it is invoked only after the ledger has
// already committed the balance change, so every record it writes
// describes a movement that actually happened.
package recorder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
)

// Recorder appends immutable transaction records.
type Recorder struct {
	store  storage.TransactionStore
	logger *slog.Logger
}

// New creates a new Recorder.
func New(store storage.TransactionStore, logger *slog.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// Record persists a SUCCESS transaction for a committed movement and
// returns the created record.
func (r *Recorder) Record(ctx context.Context, txType models.TransactionType, amount decimal.Decimal, accountNumber string) (*models.Transaction, error) {
	tx := &models.Transaction{
		ID:            uuid.New().String(),
		Type:          txType,
		Amount:        amount,
		AccountNumber: accountNumber,
		Status:        models.SUCCESS,
		CreatedAt:     time.Now(),
	}

	if err := r.store.RecordTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record %s transaction for account %s: %w", txType, accountNumber, err)
	}

	r.logger.Info("transaction recorded",
		slog.String("transaction_id", tx.ID),
		slog.String("type", string(txType)),
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.String()),
	)

	return tx, nil
}

// History retrieves the recorded movements for an account.
func (r *Recorder) History(ctx context.Context, accountNumber string) ([]models.Transaction, error) {
	txs, err := r.store.ListTransactionsByAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountNumber, err)
	}
	return txs, nil
}

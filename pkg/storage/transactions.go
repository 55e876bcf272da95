package storage

import (
	"context"

	"github.com/shaksmhd/fintech/pkg/models"
)

// TransactionStore defines the interface for the append-only transaction log.
// Records are immutable once written; there is no update or delete.
type TransactionStore interface {
	// RecordTransaction appends a transaction record.
	RecordTransaction(ctx context.Context, tx *models.Transaction) error

	// ListTransactionsByAccount retrieves all recorded movements for an
	// account number.
	ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]models.Transaction, error)
}

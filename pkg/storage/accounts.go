package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/models"
)

// AccountStore defines the interface for managing accounts.
//
// CreditBalance and DebitBalance are the only ways to change a balance.
// Implementations must apply them as a single atomic, per-account
// read-modify-write so that two concurrent movements can never act on a
// stale balance; DebitBalance must reject with ErrInsufficientFunds inside
// the same atomic step that checks the balance.
type AccountStore interface {
	// CreateAccount persists a new account. Returns ErrAccountExists if the
	// account number is already taken.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetAccount retrieves an account by its account number.
	GetAccount(ctx context.Context, accountNumber string) (*models.Account, error)

	// GetAccountByEmail retrieves an account by the holder's email.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)

	// UpdateAccount overwrites an existing account's record wholesale.
	UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// DeleteAccount removes an account record. Transaction history is not
	// touched; it references the account number, not the row.
	DeleteAccount(ctx context.Context, accountNumber string) error

	// CreditBalance atomically adds amount to the account's balance and
	// returns the updated account.
	CreditBalance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*models.Account, error)

	// DebitBalance atomically subtracts amount from the account's balance,
	// failing with ErrInsufficientFunds if the balance is too low, and
	// returns the updated account.
	DebitBalance(ctx context.Context, accountNumber string, amount decimal.Decimal) (*models.Account, error)

	// ListAccounts retrieves all accounts from the storage.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}

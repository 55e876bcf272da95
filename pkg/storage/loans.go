package storage

import (
	"context"

	"github.com/shaksmhd/fintech/pkg/models"
)

// LoanStore defines the interface for managing loans.
type LoanStore interface {
	// CreateLoan persists a new loan.
	CreateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error)

	// GetLoan retrieves a loan by its ID.
	GetLoan(ctx context.Context, loanID string) (*models.Loan, error)

	// ListLoansByUser retrieves all loans belonging to a user.
	ListLoansByUser(ctx context.Context, userID string) ([]models.Loan, error)

	// UpdateLoanStatus overwrites a loan's status and returns the updated
	// loan. Returns ErrLoanNotFound if the loan does not exist.
	UpdateLoanStatus(ctx context.Context, loanID string, status models.LoanStatus) (*models.Loan, error)
}

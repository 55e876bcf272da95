// Package loans originates loans and walks them through their status
// lifecycle. Interest is priced by tenure at application time and frozen
// on the record; later status changes never reprice.
package loans

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
)

// ErrInvalidAmount is returned when the requested principal is zero or
// negative.
var ErrInvalidAmount = errors.New("loan amount must be positive")

// ErrInvalidTenure is returned when the requested tenure is zero or
// negative.
var ErrInvalidTenure = errors.New("loan tenure must be positive")

// ErrInvalidStatus is returned when a status change names a value outside
// the loan status enumeration.
var ErrInvalidStatus = errors.New("invalid loan status")

// Originator creates loans and manages their lifecycle.
type Originator struct {
	store  storage.LoanStore
	logger *slog.Logger
}

// New creates a new Originator.
func New(store storage.LoanStore, logger *slog.Logger) *Originator {
	return &Originator{store: store, logger: logger}
}

// Apply originates a loan for userID. The interest rate is derived from
// the tenure, the total repayable is computed from the principal and
// rate, and the loan starts in APPLIED status.
func (o *Originator) Apply(ctx context.Context, userID string, amount decimal.Decimal, tenureMonths int) (*models.Loan, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if tenureMonths <= 0 {
		return nil, ErrInvalidTenure
	}

	rate := InterestRate(tenureMonths)
	now := time.Now()
	loan := &models.Loan{
		ID:           uuid.New().String(),
		UserID:       userID,
		Amount:       amount,
		InterestRate: rate,
		TenureMonths: tenureMonths,
		Status:       models.LoanApplied,
		TotalAmount:  TotalAmount(amount, rate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := o.store.CreateLoan(ctx, loan)
	if err != nil {
		return nil, fmt.Errorf("failed to create loan for user %s: %w", userID, err)
	}

	o.logger.Info("loan originated",
		slog.String("loan_id", created.ID),
		slog.String("user_id", userID),
		slog.String("amount", amount.String()),
		slog.Int("tenure_months", tenureMonths),
		slog.String("interest_rate", rate.String()),
	)

	return created, nil
}

// Get retrieves a single loan by id.
func (o *Originator) Get(ctx context.Context, loanID string) (*models.Loan, error) {
	loan, err := o.store.GetLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// ListByUser returns every loan held by userID, pending or settled. An
// unknown user yields an empty list, not an error.
func (o *Originator) ListByUser(ctx context.Context, userID string) ([]models.Loan, error) {
	list, err := o.store.ListLoansByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans for user %s: %w", userID, err)
	}
	return list, nil
}

// SetStatus moves a loan to the given status and returns the updated
// record. Any enumerated status may be assigned from any other; values
// outside the enumeration are rejected.
func (o *Originator) SetStatus(ctx context.Context, loanID string, status models.LoanStatus) (*models.Loan, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := o.store.UpdateLoanStatus(ctx, loanID, status)
	if err != nil {
		return nil, err
	}

	o.logger.Info("loan status updated",
		slog.String("loan_id", loanID),
		slog.String("status", string(status)),
	)

	return updated, nil
}

// Package mapping converts internal models into their wire-level views.
package mapping

import (
	"github.com/shaksmhd/fintech/pkg/api"
	"github.com/shaksmhd/fintech/pkg/models"
)

// LoanToResponse converts a loan model into its public view.
func LoanToResponse(loan *models.Loan) api.LoanResponse {
	return api.LoanResponse{
		ID:           loan.ID,
		UserID:       loan.UserID,
		Amount:       loan.Amount,
		InterestRate: loan.InterestRate,
		Tenure:       loan.TenureMonths,
		Status:       string(loan.Status),
		TotalAmount:  loan.TotalAmount,
	}
}

// LoansToResponses converts a slice of loans, preserving order.
func LoansToResponses(loans []models.Loan) []api.LoanResponse {
	out := make([]api.LoanResponse, 0, len(loans))
	for i := range loans {
		out = append(out, LoanToResponse(&loans[i]))
	}
	return out
}

// TransactionToRecord converts a transaction model into its public view.
func TransactionToRecord(tx *models.Transaction) api.TransactionRecord {
	return api.TransactionRecord{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		AccountNumber: tx.AccountNumber,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
	}
}

// TransactionsToRecords converts a slice of transactions, preserving
// order.
func TransactionsToRecords(txs []models.Transaction) []api.TransactionRecord {
	out := make([]api.TransactionRecord, 0, len(txs))
	for i := range txs {
		out = append(out, TransactionToRecord(&txs[i]))
	}
	return out
}

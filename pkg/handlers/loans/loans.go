// Package loans exposes loan origination and lifecycle over HTTP.
package loans

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaksmhd/fintech/pkg/api"
	"github.com/shaksmhd/fintech/pkg/loans"
	"github.com/shaksmhd/fintech/pkg/mapping"
	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
)

// LoansHandler holds the dependencies for loan-related handlers.
type LoansHandler struct {
	Originator *loans.Originator
}

// NewLoansHandler creates a new LoansHandler.
func NewLoansHandler(originator *loans.Originator) *LoansHandler {
	return &LoansHandler{Originator: originator}
}

// Apply handles the logic for originating a new loan.
func (h *LoansHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req api.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	loan, err := h.Originator.Apply(r.Context(), req.UserID, req.Amount, req.Tenure)
	if err != nil {
		if errors.Is(err, loans.ErrInvalidAmount) || errors.Is(err, loans.ErrInvalidTenure) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, "Failed to create loan", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, mapping.LoanToResponse(loan))
}

// GetLoan handles the logic for retrieving a loan by id.
func (h *LoansHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanId")

	loan, err := h.Originator.Get(r.Context(), loanID)
	if err != nil {
		if errors.Is(err, storage.ErrLoanNotFound) {
			http.Error(w, "Loan not found", http.StatusNotFound)
		} else {
			http.Error(w, "Failed to retrieve loan", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, mapping.LoanToResponse(loan))
}

// ListByUser handles the logic for retrieving all of a user's loans.
func (h *LoansHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	list, err := h.Originator.ListByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to retrieve loans", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, mapping.LoansToResponses(list))
}

// UpdateStatus handles the logic for moving a loan to a new status.
func (h *LoansHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanId")

	var req api.LoanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	loan, err := h.Originator.SetStatus(r.Context(), loanID, models.LoanStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, loans.ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrLoanNotFound):
			http.Error(w, "Loan not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to update loan status", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, mapping.LoanToResponse(loan))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Package transactions exposes the append-only movement history over
// HTTP.
package transactions

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaksmhd/fintech/pkg/mapping"
	"github.com/shaksmhd/fintech/pkg/recorder"
)

// TransactionsHandler holds the dependencies for transaction-related
// handlers.
type TransactionsHandler struct {
	Recorder *recorder.Recorder
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(rec *recorder.Recorder) *TransactionsHandler {
	return &TransactionsHandler{Recorder: rec}
}

// History handles the logic for retrieving an account's recorded
// movements. An account with no movements yields an empty list.
func (h *TransactionsHandler) History(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	txs, err := h.Recorder.History(r.Context(), accountNumber)
	if err != nil {
		http.Error(w, "Failed to retrieve transactions", http.StatusInternalServerError)
		return
	}

	records := mapping.TransactionsToRecords(txs)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(records); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

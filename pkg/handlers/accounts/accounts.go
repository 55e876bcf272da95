// Package accounts exposes the account directory and ledger operations
// over HTTP. Domain outcomes travel inside the BankResponse envelope with
// HTTP 200; only malformed requests and validation failures use HTTP
// error statuses.
package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaksmhd/fintech/pkg/api"
	"github.com/shaksmhd/fintech/pkg/directory"
	"github.com/shaksmhd/fintech/pkg/ledger"
	"github.com/shaksmhd/fintech/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Registry *directory.Registry
	Ledger   *ledger.Ledger
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(registry *directory.Registry, ldgr *ledger.Ledger) *AccountsHandler {
	return &AccountsHandler{Registry: registry, Ledger: ldgr}
}

// CreateAccount handles the logic for registering a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req api.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	resp := h.Registry.CreateAccount(r.Context(), req)
	writeBankResponse(w, resp)
}

// Login handles the logic for credential verification and token issuance.
func (h *AccountsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp := h.Registry.Login(r.Context(), req)
	writeBankResponse(w, resp)
}

// UpdateAccount handles the logic for overwriting an account's profile.
// The target account number travels in the request body.
func (h *AccountsHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req api.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.AccountNumber == "" {
		http.Error(w, "accountNumber is required", http.StatusBadRequest)
		return
	}

	resp := h.Registry.UpdateAccount(r.Context(), req.AccountNumber, req)
	writeBankResponse(w, resp)
}

// DeleteAccount handles the logic for removing an account record.
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	if err := h.Registry.DeleteAccount(r.Context(), accountNumber); err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			http.Error(w, "Account not found", http.StatusNotFound)
		} else {
			http.Error(w, "Failed to delete account", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BalanceEnquiry handles the logic for reporting an account's balance.
func (h *AccountsHandler) BalanceEnquiry(w http.ResponseWriter, r *http.Request) {
	accountNumber := r.URL.Query().Get("accountNumber")
	if accountNumber == "" {
		http.Error(w, "accountNumber is required", http.StatusBadRequest)
		return
	}

	resp := h.Ledger.BalanceEnquiry(r.Context(), accountNumber)
	writeBankResponse(w, resp)
}

// NameEnquiry handles the logic for resolving an account holder's name.
// The reply is a bare string, not an envelope.
func (h *AccountsHandler) NameEnquiry(w http.ResponseWriter, r *http.Request) {
	accountNumber := r.URL.Query().Get("accountNumber")
	if accountNumber == "" {
		http.Error(w, "accountNumber is required", http.StatusBadRequest)
		return
	}

	name := h.Ledger.NameEnquiry(r.Context(), accountNumber)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, name)
}

// Credit handles the logic for crediting an account.
func (h *AccountsHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req api.CreditDebitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := h.Ledger.Credit(r.Context(), req.AccountNumber, req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeBankResponse(w, resp)
}

// Debit handles the logic for debiting an account.
func (h *AccountsHandler) Debit(w http.ResponseWriter, r *http.Request) {
	var req api.CreditDebitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := h.Ledger.Debit(r.Context(), req.AccountNumber, req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeBankResponse(w, resp)
}

func writeBankResponse(w http.ResponseWriter, resp *api.BankResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

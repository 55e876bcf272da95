// Package directory manages account records: registration, profile
// updates, deletion and login. It owns everything about an account except
// its balance, which only the ledger may move.
package directory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shaksmhd/fintech/pkg/api"
	"github.com/shaksmhd/fintech/pkg/auth"
	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
	"github.com/shopspring/decimal"
)

// Registry performs account lifecycle operations against the account
// store.
type Registry struct {
	accounts storage.AccountStore
	gateway  auth.Gateway
	logger   *slog.Logger
}

// New creates a new Registry.
func New(accounts storage.AccountStore, gateway auth.Gateway, logger *slog.Logger) *Registry {
	return &Registry{
		accounts: accounts,
		gateway:  gateway,
		logger:   logger,
	}
}

// CreateAccount registers a new account with a freshly issued account
// number, zero balance and ACTIVE status. One account per email: a
// duplicate email yields the already-exists outcome and writes nothing.
func (r *Registry) CreateAccount(ctx context.Context, req api.UserRequest) *api.BankResponse {
	r.logger.Info("creating account", slog.String("email", req.Email))

	_, err := r.accounts.GetAccountByEmail(ctx, req.Email)
	if err == nil {
		r.logger.Warn("email already registered", slog.String("email", req.Email))
		return api.NewBankResponse(api.CodeAccountExists, nil)
	}
	if !errors.Is(err, storage.ErrAccountNotFound) {
		r.logger.Error("email lookup failed", slog.String("email", req.Email), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil)
	}

	number, err := issueAccountNumber(ctx, r.accounts)
	if err != nil {
		r.logger.Error("account number issuance failed", slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil)
	}

	role := models.Role(req.Role)
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	now := time.Now()
	account := &models.Account{
		AccountNumber:          number,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		OtherName:              req.OtherName,
		Gender:                 req.Gender,
		Address:                req.Address,
		StateOfOrigin:          req.StateOfOrigin,
		Email:                  req.Email,
		Password:               r.gateway.HashPassword(req.Password),
		PhoneNumber:            req.PhoneNumber,
		AlternativePhoneNumber: req.AlternativePhoneNumber,
		Role:                   role,
		Status:                 models.AccountActive,
		Balance:                decimal.Zero,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	created, err := r.accounts.CreateAccount(ctx, account)
	if errors.Is(err, storage.ErrAccountExists) {
		// Lost the issuance race; the caller can simply retry.
		r.logger.Warn("account number collision on create", slog.String("account_number", number))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil)
	}
	if err != nil {
		r.logger.Error("account creation failed", slog.String("email", req.Email), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil)
	}

	r.logger.Info("account created",
		slog.String("account_number", created.AccountNumber),
		slog.String("email", created.Email),
	)

	return api.NewBankResponse(api.CodeAccountCreated, &api.AccountInfo{
		AccountName:    created.DisplayName(),
		AccountBalance: created.Balance,
		AccountNumber:  created.AccountNumber,
	})
}

// GetAccount returns the identity for an account number.
func (r *Registry) GetAccount(ctx context.Context, accountNumber string) *api.BankResponse {
	account, err := r.accounts.GetAccount(ctx, accountNumber)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return api.NewBankResponse(api.CodeAccountNotExist, nil)
	}
	if err != nil {
		r.logger.Error("account lookup failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeBalanceEnquiryFailed, nil)
	}

	return api.NewBankResponse(api.CodeAccountFound, &api.AccountInfo{
		AccountName:    account.DisplayName(),
		AccountBalance: account.Balance,
		AccountNumber:  account.AccountNumber,
	})
}

// UpdateAccount overwrites the account's profile fields wholesale.
// Account number, balance, status, role and creation time are preserved;
// everything else comes from the request. A blank password keeps the
// stored one. Success answers with the created outcome, matching the
// existing wire contract.
func (r *Registry) UpdateAccount(ctx context.Context, accountNumber string, req api.UserRequest) *api.BankResponse {
	r.logger.Info("updating account", slog.String("account_number", accountNumber))

	existing, err := r.accounts.GetAccount(ctx, accountNumber)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return api.NewBankResponse(api.CodeAccountNotExist, nil)
	}
	if err != nil {
		r.logger.Error("account lookup failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil)
	}

	password := existing.Password
	if req.Password != "" {
		password = r.gateway.HashPassword(req.Password)
	}

	updated := &models.Account{
		AccountNumber:          existing.AccountNumber,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		OtherName:              req.OtherName,
		Gender:                 req.Gender,
		Address:                req.Address,
		StateOfOrigin:          req.StateOfOrigin,
		Email:                  req.Email,
		Password:               password,
		PhoneNumber:            req.PhoneNumber,
		AlternativePhoneNumber: req.AlternativePhoneNumber,
		Role:                   existing.Role,
		Status:                 existing.Status,
		Balance:                existing.Balance,
		CreatedAt:              existing.CreatedAt,
		UpdatedAt:              time.Now(),
	}

	saved, err := r.accounts.UpdateAccount(ctx, updated)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return api.NewBankResponse(api.CodeAccountNotExist, nil)
	}
	if err != nil {
		r.logger.Error("account update failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil)
	}

	return api.NewBankResponse(api.CodeAccountCreated, &api.AccountInfo{
		AccountName:    saved.DisplayName(),
		AccountBalance: saved.Balance,
		AccountNumber:  saved.AccountNumber,
	})
}

// DeleteAccount removes the account record. The transaction log is kept:
// deletion does not cascade.
func (r *Registry) DeleteAccount(ctx context.Context, accountNumber string) error {
	if err := r.accounts.DeleteAccount(ctx, accountNumber); err != nil {
		return err
	}

	r.logger.Info("account deleted", slog.String("account_number", accountNumber))
	return nil
}

// Login verifies credentials and issues a session token. Every failure,
// whatever its cause, answers with the same invalid-credentials message.
func (r *Registry) Login(ctx context.Context, req api.LoginRequest) *api.BankResponse {
	r.logger.Info("login attempt", slog.String("email", req.Email))

	account, err := r.gateway.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrBadCredentials) {
			r.logger.Error("authentication failed", slog.String("email", req.Email), slog.Any("error", err))
		}
		return api.NewLoginResponse(api.CodeAccountNotFound, api.LoginFailureMessage, nil)
	}

	token, err := r.gateway.IssueToken(account)
	if err != nil {
		r.logger.Error("token issuance failed", slog.String("email", req.Email), slog.Any("error", err))
		return api.NewLoginResponse(api.CodeAccountNotFound, api.LoginFailureMessage, nil)
	}

	return api.NewLoginResponse(api.CodeAccountFound, api.LoginSuccessMessage, &api.AccountInfo{
		AccountName:    account.DisplayName(),
		AccountBalance: account.Balance,
		AccountNumber:  account.AccountNumber,
		Token:          token,
	})
}

// Package ledger owns balance mutation and its invariants: balances never
// go negative, every committed movement is recorded exactly once, and the
// read-modify-write of a balance is atomic per account (the store performs
// the arithmetic and the sufficient-funds check in a single conditional
// update, so concurrent movements cannot act on a stale balance).
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/api"
	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/notify"
	"github.com/shaksmhd/fintech/pkg/storage"
)

// ErrInvalidAmount is returned when a movement amount is zero or negative.
// It is the only failure that surfaces as an error; every domain outcome
// (not found, insufficient balance, store failure) is reported inside the
// response envelope.
var ErrInvalidAmount = errors.New("amount must be positive")

// MovementRecorder appends a transaction record for a committed movement.
type MovementRecorder interface {
	Record(ctx context.Context, txType models.TransactionType, amount decimal.Decimal, accountNumber string) (*models.Transaction, error)
}

// Ledger performs balance enquiries and movements against the account store.
type Ledger struct {
	accounts storage.AccountStore
	recorder MovementRecorder
	notifier notify.Notifier
	logger   *slog.Logger
}

// New creates a new Ledger.
func New(accounts storage.AccountStore, recorder MovementRecorder, notifier notify.Notifier, logger *slog.Logger) *Ledger {
	return &Ledger{
		accounts: accounts,
		recorder: recorder,
		notifier: notifier,
		logger:   logger,
	}
}

// BalanceEnquiry returns the account's display name and balance, or a
// not-exist outcome if the account number is unregistered.
func (l *Ledger) BalanceEnquiry(ctx context.Context, accountNumber string) *api.BankResponse {
	l.logger.Info("starting balance enquiry", slog.String("account_number", accountNumber))

	account, err := l.accounts.GetAccount(ctx, accountNumber)
	if errors.Is(err, storage.ErrAccountNotFound) {
		l.logger.Warn("account does not exist", slog.String("account_number", accountNumber))
		return api.NewBankResponse(api.CodeAccountNotExist, nil)
	}
	if err != nil {
		l.logger.Error("balance enquiry failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeBalanceEnquiryFailed, nil)
	}

	return api.NewBankResponse(api.CodeBalanceEnquiryOK, accountInfo(account))
}

// NameEnquiry returns the account holder's composed display name, or the
// fixed not-exist / failure message. This operation answers with a bare
// string, not an envelope.
func (l *Ledger) NameEnquiry(ctx context.Context, accountNumber string) string {
	l.logger.Info("starting name enquiry", slog.String("account_number", accountNumber))

	account, err := l.accounts.GetAccount(ctx, accountNumber)
	if errors.Is(err, storage.ErrAccountNotFound) {
		l.logger.Warn("account does not exist", slog.String("account_number", accountNumber))
		return api.CodeAccountNotExist.Message()
	}
	if err != nil {
		l.logger.Error("name enquiry failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NameEnquiryFailureMessage
	}

	return account.DisplayName()
}

// Credit adds amount to the account's balance, records a CREDIT
// transaction and returns the updated identity. There is no upper bound.
func (l *Ledger) Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*api.BankResponse, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	l.logger.Info("starting credit", slog.String("account_number", accountNumber), slog.String("amount", amount.String()))

	if resp := l.checkExists(ctx, accountNumber); resp != nil {
		return resp, nil
	}

	updated, err := l.accounts.CreditBalance(ctx, accountNumber, amount)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return api.NewBankResponse(api.CodeAccountNotExist, nil), nil
	}
	if err != nil {
		l.logger.Error("credit failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil), nil
	}

	if _, err := l.recorder.Record(ctx, models.CREDIT, amount, accountNumber); err != nil {
		l.logger.Error("failed to record credit transaction", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil), nil
	}

	l.publishAlert(ctx, models.CREDIT, amount, updated)

	return api.NewBankResponse(api.CodeAccountCredited, accountInfo(updated)), nil
}

// Debit subtracts amount from the account's balance. If the balance is
// lower than amount the debit is rejected with an insufficient-balance
// outcome: nothing is mutated and no transaction is recorded.
func (l *Ledger) Debit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*api.BankResponse, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	l.logger.Info("starting debit", slog.String("account_number", accountNumber), slog.String("amount", amount.String()))

	if resp := l.checkExists(ctx, accountNumber); resp != nil {
		return resp, nil
	}

	updated, err := l.accounts.DebitBalance(ctx, accountNumber, amount)
	if errors.Is(err, storage.ErrInsufficientFunds) {
		l.logger.Warn("insufficient balance", slog.String("account_number", accountNumber), slog.String("amount", amount.String()))
		return api.NewBankResponse(api.CodeInsufficientBalance, nil), nil
	}
	if errors.Is(err, storage.ErrAccountNotFound) {
		return api.NewBankResponse(api.CodeAccountNotExist, nil), nil
	}
	if err != nil {
		l.logger.Error("debit failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil), nil
	}

	if _, err := l.recorder.Record(ctx, models.DEBIT, amount, accountNumber); err != nil {
		l.logger.Error("failed to record debit transaction", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil), nil
	}

	l.publishAlert(ctx, models.DEBIT, amount, updated)

	return api.NewBankResponse(api.CodeAccountDebited, accountInfo(updated)), nil
}

// checkExists reports the not-exist outcome before any mutation is
// attempted. The store's conditional update re-checks existence
// atomically; this lookup only distinguishes the not-exist outcome from
// insufficient funds.
func (l *Ledger) checkExists(ctx context.Context, accountNumber string) *api.BankResponse {
	_, err := l.accounts.GetAccount(ctx, accountNumber)
	if errors.Is(err, storage.ErrAccountNotFound) {
		l.logger.Warn("account does not exist", slog.String("account_number", accountNumber))
		return api.NewBankResponse(api.CodeAccountNotExist, nil)
	}
	if err != nil {
		l.logger.Error("account lookup failed", slog.String("account_number", accountNumber), slog.Any("error", err))
		return api.NewBankResponse(api.CodeAccountCreationFailed, nil)
	}
	return nil
}

// publishAlert notifies downstream consumers of a committed movement.
// Best-effort: failures are logged, never returned.
func (l *Ledger) publishAlert(ctx context.Context, txType models.TransactionType, amount decimal.Decimal, account *models.Account) {
	alert := notify.MovementAlert{
		AccountNumber: account.AccountNumber,
		Type:          txType,
		Amount:        amount,
		Balance:       account.Balance,
		Timestamp:     time.Now(),
	}
	if err := l.notifier.PublishMovement(ctx, alert); err != nil {
		l.logger.Error("movement committed but alert publish failed",
			slog.String("account_number", account.AccountNumber), slog.Any("error", err))
	}
}

func accountInfo(account *models.Account) *api.AccountInfo {
	return &api.AccountInfo{
		AccountName:    account.DisplayName(),
		AccountBalance: account.Balance,
		AccountNumber:  account.AccountNumber,
	}
}

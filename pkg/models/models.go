package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the direction of a balance movement.
type TransactionType string

const (
	CREDIT TransactionType = "CREDIT"
	DEBIT  TransactionType = "DEBIT"
)

// TransactionStatus defines the outcome recorded for a transaction.
// Only SUCCESS is ever persisted: a transaction is written after the
// balance change has already committed.
type TransactionStatus string

const (
	SUCCESS TransactionStatus = "SUCCESS"
)

// AccountStatus defines the possible states of an account.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
)

// Role defines the access role assigned to an account holder.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// LoanStatus defines the lifecycle states of a loan.
type LoanStatus string

const (
	LoanApplied  LoanStatus = "APPLIED"
	LoanApproved LoanStatus = "APPROVED"
	LoanRejected LoanStatus = "REJECTED"
	LoanRepaid   LoanStatus = "REPAID"
)

// Valid reports whether s is one of the known loan states.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanApplied, LoanApproved, LoanRejected, LoanRepaid:
		return true
	}
	return false
}

// Account represents the internal domain model for a customer account.
// The account number is the externally visible identifier; Balance is
// never negative at any observable point.
type Account struct {
	AccountNumber          string
	FirstName              string
	LastName               string
	OtherName              string
	Gender                 string
	Address                string
	StateOfOrigin          string
	Email                  string
	Password               string
	PhoneNumber            string
	AlternativePhoneNumber string
	Role                   Role
	Status                 AccountStatus
	Balance                decimal.Decimal
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DisplayName composes the account holder's full name for responses.
func (a *Account) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.FirstName, a.LastName, a.OtherName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Transaction represents a single recorded balance movement. Records are
// append-only and reference the account by number, not by a live row, so
// history survives account deletion.
type Transaction struct {
	ID            string
	Type          TransactionType
	Amount        decimal.Decimal
	AccountNumber string
	Status        TransactionStatus
	CreatedAt     time.Time
}

// Loan represents a loan originated for a user. InterestRate and
// TotalAmount are derived from the tenure and principal at creation time
// and are never independently editable; Status is the only field mutable
// after creation.
type Loan struct {
	ID           string
	UserID       string
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	TenureMonths int
	Status       LoanStatus
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

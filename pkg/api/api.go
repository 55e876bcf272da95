// Package api defines the wire-level request and response types for the
// service. Responses wrap every outcome, success or failure, in a
// BankResponse envelope carrying one of the closed set of outcome codes.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankResponse is the envelope returned by every account operation.
type BankResponse struct {
	ResponseCode    Code         `json:"responseCode"`
	ResponseMessage string       `json:"responseMessage"`
	AccountInfo     *AccountInfo `json:"accountInfo,omitempty"`
}

// AccountInfo is the identity payload attached to successful responses.
// Token is only populated by login.
type AccountInfo struct {
	AccountName    string          `json:"accountName"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	AccountNumber  string          `json:"accountNumber"`
	Token          string          `json:"token,omitempty"`
}

// NewBankResponse builds an envelope with the code's fixed message.
func NewBankResponse(code Code, info *AccountInfo) *BankResponse {
	return &BankResponse{
		ResponseCode:    code,
		ResponseMessage: code.Message(),
		AccountInfo:     info,
	}
}

// Login replies reuse the envelope but with their own fixed messages. The
// failure message is identical for every failure cause.
const (
	LoginSuccessMessage = "Login successful"
	LoginFailureMessage = "Invalid credentials"
)

// NewLoginResponse builds a login envelope with an explicit message.
func NewLoginResponse(code Code, message string, info *AccountInfo) *BankResponse {
	return &BankResponse{
		ResponseCode:    code,
		ResponseMessage: message,
		AccountInfo:     info,
	}
}

// UserRequest carries the full profile for account creation and update.
// Updates overwrite all mutable fields wholesale; partial updates are not
// supported.
type UserRequest struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	OtherName              string `json:"otherName"`
	Gender                 string `json:"gender"`
	Address                string `json:"address"`
	StateOfOrigin          string `json:"stateOfOrigin"`
	AccountNumber          string `json:"accountNumber,omitempty"`
	Role                   string `json:"role,omitempty"`
	Email                  string `json:"email"`
	Password               string `json:"password"`
	PhoneNumber            string `json:"phoneNumber"`
	AlternativePhoneNumber string `json:"alternativePhoneNumber"`
}

// LoginRequest carries credentials for the login operation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreditDebitRequest carries a movement request against an account.
type CreditDebitRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

// LoanRequest carries a loan application.
type LoanRequest struct {
	UserID string          `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
	Tenure int             `json:"tenure"`
}

// LoanStatusRequest carries a loan status change.
type LoanStatusRequest struct {
	Status string `json:"status"`
}

// LoanResponse is the public view of a loan.
type LoanResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Tenure       int             `json:"tenure"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// TransactionRecord is the public view of a recorded movement.
type TransactionRecord struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	AccountNumber string          `json:"accountNumber"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

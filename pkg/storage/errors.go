package storage

import "errors"

// ErrAccountNotFound is returned when an account number or email does not resolve to an account.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned when creating an account whose account number is already taken.
var ErrAccountExists = errors.New("account already exists")

// ErrInsufficientFunds is returned when a debit would take an account's balance below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrLoanNotFound is returned when a loan ID does not resolve to a loan.
var ErrLoanNotFound = errors.New("loan not found")

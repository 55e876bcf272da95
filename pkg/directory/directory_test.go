package directory_test

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shaksmhd/fintech/pkg/api"
	"github.com/shaksmhd/fintech/pkg/auth"
	authmocks "github.com/shaksmhd/fintech/pkg/auth/mocks"
	"github.com/shaksmhd/fintech/pkg/directory"
	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
	"github.com/shaksmhd/fintech/pkg/storage/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userRequest() api.UserRequest {
	return api.UserRequest{
		FirstName:     "Ada",
		LastName:      "Obi",
		Gender:        "F",
		Address:       "12 Marina Rd",
		StateOfOrigin: "Lagos",
		Email:         "ada@example.com",
		Password:      "s3cret",
		PhoneNumber:   "08010000000",
	}
}

func TestCreateAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("GetAccountByEmail", mock.Anything, "ada@example.com").Return(nil, storage.ErrAccountNotFound)
		// Account number issuance probes candidates until one is free.
		mockAccounts.On("GetAccount", mock.Anything, mock.Anything).Return(nil, storage.ErrAccountNotFound)
		mockAccounts.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
			return a.Email == "ada@example.com" &&
				a.Role == models.RoleUser &&
				a.Status == models.AccountActive &&
				a.Balance.Equal(decimal.Zero) &&
				a.Password == "hashed-s3cret"
		})).Return(func(ctx context.Context, a *models.Account) *models.Account { return a }, nil)

		mockGateway := new(authmocks.Gateway)
		mockGateway.On("HashPassword", "s3cret").Return("hashed-s3cret")

		r := directory.New(mockAccounts, mockGateway, testLogger())
		resp := r.CreateAccount(context.Background(), userRequest())

		assert.Equal(t, api.CodeAccountCreated, resp.ResponseCode)
		assert.Regexp(t, regexp.MustCompile(`^\d{10}$`), resp.AccountInfo.AccountNumber)
		assert.True(t, resp.AccountInfo.AccountBalance.Equal(decimal.Zero))
		mockAccounts.AssertExpectations(t)
		mockGateway.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("GetAccountByEmail", mock.Anything, "ada@example.com").Return(&models.Account{Email: "ada@example.com"}, nil)

		r := directory.New(mockAccounts, new(authmocks.Gateway), testLogger())
		resp := r.CreateAccount(context.Background(), userRequest())

		assert.Equal(t, api.CodeAccountExists, resp.ResponseCode)
		assert.Nil(t, resp.AccountInfo)
		mockAccounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("Storage Error On Create", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("GetAccountByEmail", mock.Anything, mock.Anything).Return(nil, storage.ErrAccountNotFound)
		mockAccounts.On("GetAccount", mock.Anything, mock.Anything).Return(nil, storage.ErrAccountNotFound)
		mockAccounts.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		mockGateway := new(authmocks.Gateway)
		mockGateway.On("HashPassword", mock.Anything).Return("hashed")

		r := directory.New(mockAccounts, mockGateway, testLogger())
		resp := r.CreateAccount(context.Background(), userRequest())

		assert.Equal(t, api.CodeAccountCreationFailed, resp.ResponseCode)
	})
}

func TestUpdateAccount(t *testing.T) {
	existing := &models.Account{
		AccountNumber: "2026123456",
		FirstName:     "Ada",
		LastName:      "Obi",
		Email:         "ada@example.com",
		Password:      "stored-hash",
		Role:          models.RoleUser,
		Status:        models.AccountActive,
		Balance:       decimal.NewFromInt(300),
	}

	t.Run("Success Preserves Balance And Number", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("GetAccount", mock.Anything, "2026123456").Return(existing, nil)
		mockAccounts.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
			return a.AccountNumber == "2026123456" &&
				a.Balance.Equal(decimal.NewFromInt(300)) &&
				a.FirstName == "Adaeze" &&
				a.Password == "stored-hash"
		})).Return(func(ctx context.Context, a *models.Account) *models.Account { return a }, nil)

		req := userRequest()
		req.FirstName = "Adaeze"
		req.Password = ""

		r := directory.New(mockAccounts, new(authmocks.Gateway), testLogger())
		resp := r.UpdateAccount(context.Background(), "2026123456", req)

		// Updates answer with the creation-success code; the wire
		// contract has no separate updated code.
		assert.Equal(t, api.CodeAccountCreated, resp.ResponseCode)
		assert.Equal(t, "2026123456", resp.AccountInfo.AccountNumber)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("Rehashes New Password", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("GetAccount", mock.Anything, "2026123456").Return(existing, nil)
		mockAccounts.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
			return a.Password == "hashed-new"
		})).Return(func(ctx context.Context, a *models.Account) *models.Account { return a }, nil)

		mockGateway := new(authmocks.Gateway)
		mockGateway.On("HashPassword", "new-pass").Return("hashed-new")

		req := userRequest()
		req.Password = "new-pass"

		r := directory.New(mockAccounts, mockGateway, testLogger())
		resp := r.UpdateAccount(context.Background(), "2026123456", req)

		assert.Equal(t, api.CodeAccountCreated, resp.ResponseCode)
		mockGateway.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("GetAccount", mock.Anything, mock.Anything).Return(nil, storage.ErrAccountNotFound)

		r := directory.New(mockAccounts, new(authmocks.Gateway), testLogger())
		resp := r.UpdateAccount(context.Background(), "2026000000", userRequest())

		assert.Equal(t, api.CodeAccountNotExist, resp.ResponseCode)
		mockAccounts.AssertNotCalled(t, "UpdateAccount", mock.Anything, mock.Anything)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("DeleteAccount", mock.Anything, "2026123456").Return(nil)

		r := directory.New(mockAccounts, new(authmocks.Gateway), testLogger())
		err := r.DeleteAccount(context.Background(), "2026123456")

		assert.NoError(t, err)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockAccounts := new(mocks.AccountStore)
		mockAccounts.On("DeleteAccount", mock.Anything, mock.Anything).Return(storage.ErrAccountNotFound)

		r := directory.New(mockAccounts, new(authmocks.Gateway), testLogger())
		err := r.DeleteAccount(context.Background(), "2026000000")

		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	})
}

func TestLogin(t *testing.T) {
	account := &models.Account{
		AccountNumber: "2026123456",
		FirstName:     "Ada",
		LastName:      "Obi",
		Email:         "ada@example.com",
		Balance:       decimal.NewFromInt(100),
	}

	t.Run("Success", func(t *testing.T) {
		mockGateway := new(authmocks.Gateway)
		mockGateway.On("Authenticate", mock.Anything, "ada@example.com", "s3cret").Return(account, nil)
		mockGateway.On("IssueToken", account).Return("signed-token", nil)

		r := directory.New(new(mocks.AccountStore), mockGateway, testLogger())
		resp := r.Login(context.Background(), api.LoginRequest{Email: "ada@example.com", Password: "s3cret"})

		assert.Equal(t, api.CodeAccountFound, resp.ResponseCode)
		assert.Equal(t, api.LoginSuccessMessage, resp.ResponseMessage)
		assert.Equal(t, "signed-token", resp.AccountInfo.Token)
		mockGateway.AssertExpectations(t)
	})

	t.Run("Bad Credentials", func(t *testing.T) {
		mockGateway := new(authmocks.Gateway)
		mockGateway.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return(nil, auth.ErrBadCredentials)

		r := directory.New(new(mocks.AccountStore), mockGateway, testLogger())
		resp := r.Login(context.Background(), api.LoginRequest{Email: "ada@example.com", Password: "wrong"})

		assert.Equal(t, api.LoginFailureMessage, resp.ResponseMessage)
		assert.Nil(t, resp.AccountInfo)
	})

	t.Run("Gateway Error Uses Same Message", func(t *testing.T) {
		// An internal failure must be indistinguishable from a wrong
		// password.
		mockGateway := new(authmocks.Gateway)
		mockGateway.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		r := directory.New(new(mocks.AccountStore), mockGateway, testLogger())
		resp := r.Login(context.Background(), api.LoginRequest{Email: "ada@example.com", Password: "s3cret"})

		assert.Equal(t, api.LoginFailureMessage, resp.ResponseMessage)
		assert.Nil(t, resp.AccountInfo)
	})
}

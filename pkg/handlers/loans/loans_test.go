package loans_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shaksmhd/fintech/pkg/api"
	loanshandler "github.com/shaksmhd/fintech/pkg/handlers/loans"
	"github.com/shaksmhd/fintech/pkg/loans"
	"github.com/shaksmhd/fintech/pkg/models"
	"github.com/shaksmhd/fintech/pkg/storage"
	"github.com/shaksmhd/fintech/pkg/storage/mocks"
)

func newHandler(mockStore *mocks.LoanStore) *loanshandler.LoansHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return loanshandler.NewLoansHandler(loans.New(mockStore, logger))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestApplyHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.LoanStore)
		mockStore.On("CreateLoan", mock.Anything, mock.Anything).Return(func(ctx context.Context, loan *models.Loan) *models.Loan { return loan }, nil)

		h := newHandler(mockStore)

		body, _ := json.Marshal(api.LoanRequest{UserID: "user-1", Amount: decimal.NewFromInt(1000), Tenure: 12})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/apply", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Apply(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp api.LoanResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "user-1", resp.UserID)
		assert.Equal(t, string(models.LoanApplied), resp.Status)
		assert.True(t, resp.InterestRate.Equal(decimal.NewFromInt(5)))
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(1050)))
		mockStore.AssertExpectations(t)
	})

	t.Run("Missing User", func(t *testing.T) {
		h := newHandler(new(mocks.LoanStore))

		body, _ := json.Marshal(api.LoanRequest{Amount: decimal.NewFromInt(1000), Tenure: 12})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/apply", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Apply(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Non Positive Tenure", func(t *testing.T) {
		h := newHandler(new(mocks.LoanStore))

		body, _ := json.Marshal(api.LoanRequest{UserID: "user-1", Amount: decimal.NewFromInt(1000)})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/apply", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Apply(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "tenure must be positive")
	})
}

func TestGetLoanHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		loan := &models.Loan{ID: "loan-1", UserID: "user-1", Status: models.LoanApplied}
		mockStore := new(mocks.LoanStore)
		mockStore.On("GetLoan", mock.Anything, "loan-1").Return(loan, nil)

		h := newHandler(mockStore)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/loans/loan-1", nil), "loanId", "loan-1")
		rr := httptest.NewRecorder()

		h.GetLoan(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.LoanResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "loan-1", resp.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStore := new(mocks.LoanStore)
		mockStore.On("GetLoan", mock.Anything, mock.Anything).Return(nil, storage.ErrLoanNotFound)

		h := newHandler(mockStore)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/loans/missing", nil), "loanId", "missing")
		rr := httptest.NewRecorder()

		h.GetLoan(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListByUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		expected := []models.Loan{
			{ID: "loan-1", UserID: "user-1"},
			{ID: "loan-2", UserID: "user-1"},
		}
		mockStore := new(mocks.LoanStore)
		mockStore.On("ListLoansByUser", mock.Anything, "user-1").Return(expected, nil)

		h := newHandler(mockStore)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/loans/user/user-1", nil), "userId", "user-1")
		rr := httptest.NewRecorder()

		h.ListByUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []api.LoanResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Len(t, resp, 2)
	})

	t.Run("Empty List Not Error", func(t *testing.T) {
		mockStore := new(mocks.LoanStore)
		mockStore.On("ListLoansByUser", mock.Anything, "nobody").Return([]models.Loan{}, nil)

		h := newHandler(mockStore)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/loans/user/nobody", nil), "userId", "nobody")
		rr := httptest.NewRecorder()

		h.ListByUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		updated := &models.Loan{ID: "loan-1", Status: models.LoanApproved}
		mockStore := new(mocks.LoanStore)
		mockStore.On("UpdateLoanStatus", mock.Anything, "loan-1", models.LoanApproved).Return(updated, nil)

		h := newHandler(mockStore)

		body, _ := json.Marshal(api.LoanStatusRequest{Status: "APPROVED"})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/loans/loan-1/status", bytes.NewReader(body)), "loanId", "loan-1")
		rr := httptest.NewRecorder()

		h.UpdateStatus(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.LoanResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.Equal(t, "APPROVED", resp.Status)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		h := newHandler(new(mocks.LoanStore))

		body, _ := json.Marshal(api.LoanStatusRequest{Status: "SHREDDED"})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/loans/loan-1/status", bytes.NewReader(body)), "loanId", "loan-1")
		rr := httptest.NewRecorder()

		h.UpdateStatus(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStore := new(mocks.LoanStore)
		mockStore.On("UpdateLoanStatus", mock.Anything, "missing", models.LoanApproved).Return(nil, storage.ErrLoanNotFound)

		h := newHandler(mockStore)

		body, _ := json.Marshal(api.LoanStatusRequest{Status: "APPROVED"})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/loans/missing/status", bytes.NewReader(body)), "loanId", "missing")
		rr := httptest.NewRecorder()

		h.UpdateStatus(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

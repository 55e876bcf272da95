// Package handlers assembles the HTTP routing table for the service.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shaksmhd/fintech/pkg/directory"
	accountshandler "github.com/shaksmhd/fintech/pkg/handlers/accounts"
	loanshandler "github.com/shaksmhd/fintech/pkg/handlers/loans"
	transactionshandler "github.com/shaksmhd/fintech/pkg/handlers/transactions"
	"github.com/shaksmhd/fintech/pkg/ledger"
	"github.com/shaksmhd/fintech/pkg/loans"
	"github.com/shaksmhd/fintech/pkg/middleware"
	"github.com/shaksmhd/fintech/pkg/recorder"
)

// NewRouter wires every handler onto a chi router with request id,
// structured logging and panic recovery middleware.
func NewRouter(
	registry *directory.Registry,
	ldgr *ledger.Ledger,
	originator *loans.Originator,
	rec *recorder.Recorder,
	logger *slog.Logger,
) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	accounts := accountshandler.NewAccountsHandler(registry, ldgr)
	router.Route("/api/user", func(r chi.Router) {
		r.Post("/create", accounts.CreateAccount)
		r.Post("/login", accounts.Login)
		r.Put("/update", accounts.UpdateAccount)
		r.Delete("/delete/{accountNumber}", accounts.DeleteAccount)
		r.Get("/balanceEnquiry", accounts.BalanceEnquiry)
		r.Get("/nameEnquiry", accounts.NameEnquiry)
		r.Post("/credit", accounts.Credit)
		r.Post("/debit", accounts.Debit)
	})

	loansH := loanshandler.NewLoansHandler(originator)
	router.Route("/api/v1/loans", func(r chi.Router) {
		r.Post("/apply", loansH.Apply)
		r.Get("/user/{userId}", loansH.ListByUser)
		r.Get("/{loanId}", loansH.GetLoan)
		r.Put("/{loanId}/status", loansH.UpdateStatus)
	})

	txH := transactionshandler.NewTransactionsHandler(rec)
	router.Get("/api/transactions/{accountNumber}", txH.History)

	return router
}

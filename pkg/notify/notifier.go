package notify

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shaksmhd/fintech/pkg/models"
)

// MovementAlert describes a committed balance movement for downstream
// consumers (statement mailers, fraud monitors).
type MovementAlert struct {
	AccountNumber string                 `json:"account_number"`
	Type          models.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	Balance       decimal.Decimal        `json:"balance"`
	Timestamp     time.Time              `json:"timestamp"`
}

// Notifier defines the interface for publishing movement alerts.
// Publishing is best-effort: a failed publish must never fail the
// movement that triggered it.
type Notifier interface {
	PublishMovement(ctx context.Context, alert MovementAlert) error
}

// NoopNotifier is a Notifier that does nothing.
type NoopNotifier struct{}

// PublishMovement does nothing.
func (n *NoopNotifier) PublishMovement(ctx context.Context, alert MovementAlert) error {
	return nil
}

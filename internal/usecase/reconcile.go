package usecase

import (
	"context"
	"log/slog"
	"time"

	"weatherstay/internal/infra/gateway/payments"
	"weatherstay/internal/infra/repository"
	"weatherstay/internal/pkg/clock"
	"weatherstay/internal/pkg/errs"
)

// ReconcilerStore is the single store operation the reconciler needs: the
// atomic pending → confirmed transition keyed by payment session. The booking
// repository implements it.
type ReconcilerStore interface {
	ConfirmBySession(ctx context.Context, sessionID string, now time.Time) (repository.ConfirmOutcome, error)
}

// PaymentReconciler advances booking state from verified payment events.
// Reconcile returns an error only on transient persistence failure; the
// webhook handler maps that to a retryable response. Every other branch is a
// deliberate acknowledged no-op: the notification sender cannot act on
// unknown events or missing correlations, so asking it to retry them would
// only generate noise.
type PaymentReconciler interface {
	Reconcile(ctx context.Context, event payments.Event) error
}

type paymentReconcilerImpl struct {
	store ReconcilerStore
	clock clock.Clock
}

func NewPaymentReconciler(store ReconcilerStore, clk clock.Clock) PaymentReconciler {
	return &paymentReconcilerImpl{
		store: store,
		clock: clk,
	}
}

func (r *paymentReconcilerImpl) Reconcile(ctx context.Context, event payments.Event) error {
	if event.Type != payments.EventCheckoutCompleted {
		slog.Debug("ignoring payment event", "event_id", event.ID, "type", event.Type)
		return nil
	}

	sessionID := event.Session.ID
	if sessionID == "" {
		slog.Warn("completed checkout event without session id", "event_id", event.ID)
		return nil
	}

	outcome, err := r.store.ConfirmBySession(ctx, sessionID, r.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch outcome {
	case repository.ConfirmOutcomeConfirmed:
		slog.Info("booking confirmed", "session_id", sessionID, "event_id", event.ID)
	case repository.ConfirmOutcomeAlreadyConfirmed:
		// duplicate delivery; already in the target state
		slog.Info("duplicate payment event acknowledged", "session_id", sessionID, "event_id", event.ID)
	case repository.ConfirmOutcomeNotFound:
		slog.Warn("no booking for payment session, event acknowledged",
			"session_id", sessionID, "event_id", event.ID)
	}
	return nil
}

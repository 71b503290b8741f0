//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"weatherstay/internal/infra"
	"weatherstay/internal/infra/gateway/payments"
	"weatherstay/internal/infra/repository"
	"weatherstay/internal/pkg/clock"
	"weatherstay/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReconcilerStore struct {
	mock.Mock
}

func (m *MockReconcilerStore) ConfirmBySession(ctx context.Context, sessionID string, now time.Time) (repository.ConfirmOutcome, error) {
	args := m.Called(ctx, sessionID, now)
	return args.Get(0).(repository.ConfirmOutcome), args.Error(1)
}

func completedEvent(sessionID string) payments.Event {
	return payments.Event{
		ID:      "evt_1",
		Type:    payments.EventCheckoutCompleted,
		Session: payments.CheckoutSessionRef{ID: sessionID, PaymentStatus: "paid"},
	}
}

func TestReconcile(t *testing.T) {
	newReconciler := func() (*MockReconcilerStore, usecase.PaymentReconciler) {
		store := new(MockReconcilerStore)
		return store, usecase.NewPaymentReconciler(store, clock.NewMockClock(testNow))
	}

	t.Run("completed event confirms the pending booking", func(t *testing.T) {
		store, r := newReconciler()
		store.On("ConfirmBySession", mock.Anything, "sess_1", testNow).
			Return(repository.ConfirmOutcomeConfirmed, nil)

		assert.NoError(t, r.Reconcile(context.Background(), completedEvent("sess_1")))
		store.AssertExpectations(t)
	})

	t.Run("duplicate delivery is an acknowledged no-op", func(t *testing.T) {
		store, r := newReconciler()
		store.On("ConfirmBySession", mock.Anything, "sess_1", testNow).
			Return(repository.ConfirmOutcomeAlreadyConfirmed, nil)

		assert.NoError(t, r.Reconcile(context.Background(), completedEvent("sess_1")))
	})

	t.Run("missing correlation is swallowed", func(t *testing.T) {
		store, r := newReconciler()
		store.On("ConfirmBySession", mock.Anything, "sess_gone", testNow).
			Return(repository.ConfirmOutcomeNotFound, nil)

		assert.NoError(t, r.Reconcile(context.Background(), completedEvent("sess_gone")))
	})

	t.Run("non-completed events never touch the store", func(t *testing.T) {
		store, r := newReconciler()

		events := []payments.Event{
			{ID: "evt_2", Type: payments.EventCheckoutExpired, Session: payments.CheckoutSessionRef{ID: "sess_1"}},
			{ID: "evt_3", Type: payments.EventUnknown, Session: payments.CheckoutSessionRef{ID: "sess_1"}},
		}
		for _, ev := range events {
			assert.NoError(t, r.Reconcile(context.Background(), ev))
		}
		store.AssertNotCalled(t, "ConfirmBySession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("completed event without session id is swallowed", func(t *testing.T) {
		store, r := newReconciler()
		assert.NoError(t, r.Reconcile(context.Background(), completedEvent("")))
		store.AssertNotCalled(t, "ConfirmBySession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("persistence failure propagates for retry", func(t *testing.T) {
		store, r := newReconciler()
		store.On("ConfirmBySession", mock.Anything, "sess_1", testNow).
			Return(repository.ConfirmOutcomeNotFound, infra.WrapRepoErr("down", assert.AnError))

		err := r.Reconcile(context.Background(), completedEvent("sess_1"))
		assert.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}

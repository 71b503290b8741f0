package payments

import (
	"encoding/json"

	"weatherstay/internal/pkg/errs"
)

// EventType is the closed set of notification types this service understands.
// Anything else parses as EventUnknown and is acknowledged without action, so
// new provider event types cannot break the webhook.
type EventType string

const (
	EventCheckoutCompleted EventType = "checkout.session.completed"
	EventCheckoutExpired   EventType = "checkout.session.expired"
	EventUnknown           EventType = "unknown"
)

// Event is a decoded webhook notification.
type Event struct {
	ID      string
	Type    EventType
	Session CheckoutSessionRef
}

// CheckoutSessionRef is the session object embedded in an event. Only the
// fields the reconciliation path needs are decoded.
type CheckoutSessionRef struct {
	ID              string `json:"id"`
	PaymentStatus   string `json:"payment_status"`
	AmountTotal     int64  `json:"amount_total"`
	ClientReference string `json:"client_reference_id"`
}

type wireEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object CheckoutSessionRef `json:"object"`
	} `json:"data"`
}

// ParseEvent decodes a verified webhook payload. Unrecognized event types are
// mapped to EventUnknown rather than rejected.
func ParseEvent(payload []byte) (Event, error) {
	var we wireEvent
	if err := json.Unmarshal(payload, &we); err != nil {
		return Event{}, errs.Wrap(err, "failed to decode webhook event")
	}

	et := EventUnknown
	switch EventType(we.Type) {
	case EventCheckoutCompleted:
		et = EventCheckoutCompleted
	case EventCheckoutExpired:
		et = EventCheckoutExpired
	}

	return Event{
		ID:      we.ID,
		Type:    et,
		Session: we.Data.Object,
	}, nil
}

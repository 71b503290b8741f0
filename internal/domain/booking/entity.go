package booking

import (
	"errors"
	"time"

	"weatherstay/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrMissingUserID      = errors.New("user id is required")
	ErrMissingRoomID      = errors.New("room id is required")
	ErrAlreadyConfirmed   = errors.New("booking is already confirmed")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrConfirmedImmutable = errors.New("a confirmed booking cannot be cancelled")
	ErrNotOwner           = errors.New("booking is owned by another user")
)

type Services struct {
	Clock clock.Clock
}

// Booking is the persisted record of a user's commitment to reserve a room
// for a date, priced at creation time. Fields are unexported; all mutation
// goes through the defined transitions.
type Booking struct {
	id               uuid.UUID
	userID           string
	roomID           string
	roomName         string
	date             StayDate
	price            PriceBreakdown
	status           Status
	paymentSessionID string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewPendingBooking creates a booking in pending status. The payment session
// must already exist: persistence is the last step of the creation flow, so a
// booking without a checkout reference is never constructed.
func NewPendingBooking(
	services *Services,
	userID, roomID, roomName string,
	date StayDate,
	price PriceBreakdown,
	paymentSessionID string,
) (*Booking, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if roomID == "" {
		return nil, ErrMissingRoomID
	}
	if paymentSessionID == "" {
		return nil, ErrMissingSession
	}

	now := services.Clock.Now()
	return &Booking{
		id:               uuid.New(),
		userID:           userID,
		roomID:           roomID,
		roomName:         roomName,
		date:             date,
		price:            price,
		status:           StatusPending,
		paymentSessionID: paymentSessionID,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	userID, roomID, roomName string,
	date StayDate,
	price PriceBreakdown,
	status Status,
	paymentSessionID string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		userID:           userID,
		roomID:           roomID,
		roomName:         roomName,
		date:             date,
		price:            price,
		status:           status,
		paymentSessionID: paymentSessionID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Confirm transitions pending → confirmed. Confirming an already-confirmed
// booking returns ErrAlreadyConfirmed so callers can treat redelivery as a
// no-op rather than a failure.
func (b *Booking) Confirm(now time.Time) error {
	switch b.status {
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	case StatusCancelled:
		return ErrAlreadyCancelled
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// ValidateCancellation checks that requester may cancel this booking.
// Ownership is checked first so a non-owner learns nothing about status.
func (b *Booking) ValidateCancellation(requesterID string) error {
	if b.userID != requesterID {
		return ErrNotOwner
	}
	if b.status == StatusConfirmed {
		return ErrConfirmedImmutable
	}
	return nil
}

func (b *Booking) IsOwnedBy(userID string) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() string           { return b.userID }
func (b *Booking) RoomID() string           { return b.roomID }
func (b *Booking) RoomName() string         { return b.roomName }
func (b *Booking) Date() StayDate           { return b.date }
func (b *Booking) Price() PriceBreakdown    { return b.price }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) PaymentSessionID() string { return b.paymentSessionID }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

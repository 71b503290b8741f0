package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"weatherstay/internal/domain/booking"
	"weatherstay/internal/domain/pricing"
	"weatherstay/internal/domain/weather"
	"weatherstay/internal/infra"
	"weatherstay/internal/infra/gateway/payments"
	"weatherstay/internal/infra/gateway/rooms"
	"weatherstay/internal/pkg/errs"
	"weatherstay/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate        = errors.New("invalid booking date")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomCatalogDown    = errors.New("room catalog unavailable")
	ErrPaymentGatewayDown = errors.New("payment gateway unavailable")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrCancelConflict     = errors.New("confirmed booking cannot be cancelled")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

const checkoutCurrency = "usd"

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]*readmodel.BookingRM, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, userID string) (bool, error)
}

type RoomCatalog interface {
	GetRoom(ctx context.Context, roomID string) (*rooms.Room, error)
}

type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error)
}

type CreateBookingParams struct {
	UserID string
	RoomID string
	Date   string
}

// CreateBookingResult carries only what the caller needs to proceed to
// payment. Price internals are visible later via the list endpoint, never as
// a payment confirmation.
type CreateBookingResult struct {
	BookingID   uuid.UUID
	CheckoutURL string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	GetUserBookings(ctx context.Context, userID string) ([]*readmodel.BookingRM, error)
	CancelBooking(ctx context.Context, id uuid.UUID, userID string) error
}

type bookingUseCaseImpl struct {
	repo     BookingRepository
	catalog  RoomCatalog
	checkout CheckoutGateway
	services *booking.Services
}

func NewBookingUseCase(
	repo BookingRepository,
	catalog RoomCatalog,
	checkout CheckoutGateway,
	services *booking.Services,
) BookingUseCase {
	return &bookingUseCaseImpl{
		repo:     repo,
		catalog:  catalog,
		checkout: checkout,
		services: services,
	}
}

// CreateBooking runs the creation flow in strict order: catalog lookup,
// pricing, checkout session, then persistence. Nothing is persisted until the
// upstream session exists, so a failed step leaves no partial booking behind.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	date, err := booking.NewStayDate(params.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	room, err := u.catalog.GetRoom(ctx, params.RoomID)
	if err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrRoomCatalogDown)
	}

	forecast := weather.GetForecast(room.Location, date.String())
	quote, err := pricing.WeatherSurcharge(room.BasePrice, forecast.Temperature)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	session, err := u.checkout.CreateCheckoutSession(ctx, payments.CheckoutParams{
		Amount:      quote.Total,
		Currency:    checkoutCurrency,
		Description: checkoutDescription(room.Name, date, forecast, quote),
		Reference:   params.RoomID,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayDown)
	}

	price, err := booking.NewPriceBreakdown(room.BasePrice, quote.Surcharge)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	entity, err := booking.NewPendingBooking(
		u.services,
		params.UserID,
		params.RoomID,
		room.Name,
		date,
		price,
		session.ID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := u.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking created",
		"booking_id", entity.ID(),
		"room_id", params.RoomID,
		"temperature", forecast.Temperature,
		"surcharge_pct", quote.Percentage,
	)

	return &CreateBookingResult{
		BookingID:   entity.ID(),
		CheckoutURL: session.URL,
	}, nil
}

func (u *bookingUseCaseImpl) GetUserBookings(ctx context.Context, userID string) ([]*readmodel.BookingRM, error) {
	result, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, nil
}

// CancelBooking removes the caller's booking. A booking that does not exist
// and a booking owned by someone else produce the same error, so the endpoint
// cannot be used to probe other users' bookings.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, userID string) error {
	entity, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.ValidateCancellation(userID); err != nil {
		if errors.Is(err, booking.ErrNotOwner) {
			return ErrBookingNotFound
		}
		return ErrCancelConflict
	}

	deleted, err := u.repo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !deleted {
		// lost a race against confirmation or a concurrent cancel; the
		// delete guard held, classify from the current row
		current, findErr := u.repo.FindByID(ctx, id)
		if findErr == nil && current.Status() == booking.StatusConfirmed {
			return ErrCancelConflict
		}
		return ErrBookingNotFound
	}
	return nil
}

func checkoutDescription(roomName string, date booking.StayDate, fc weather.Forecast, quote pricing.Quote) string {
	return fmt.Sprintf(
		"%s on %s (forecast %d°C %s): base %.2f + weather charge %.2f",
		roomName, date, fc.Temperature, fc.Condition, quote.Total-quote.Surcharge, quote.Surcharge,
	)
}

package repository

import (
	"context"
	"errors"
	"time"

	"weatherstay/internal/domain/booking"
	"weatherstay/internal/infra"
	"weatherstay/internal/pkg/pgconv"
	"weatherstay/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgxpool.Pool the repository needs; tests substitute
// their own implementation.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const pgUniqueViolation = "23505"

// ConfirmOutcome classifies the result of the atomic confirm transition.
type ConfirmOutcome int

const (
	ConfirmOutcomeConfirmed ConfirmOutcome = iota
	ConfirmOutcomeAlreadyConfirmed
	ConfirmOutcomeNotFound
)

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const q = `
		INSERT INTO bookings (
			id, user_id, room_id, room_name, stay_date,
			base_price, weather_charge, final_price,
			status, payment_session_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, q,
		pgconv.UUIDToPgtype(b.ID()),
		b.UserID(),
		b.RoomID(),
		b.RoomName(),
		pgconv.DateToPgtype(b.Date().Time()),
		b.Price().BasePrice(),
		b.Price().WeatherCharge(),
		b.Price().FinalPrice(),
		b.Status().String(),
		b.PaymentSessionID(),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("payment session already linked to a booking", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = selectColumns + ` FROM bookings WHERE id = $1`

	row := r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id))
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

// FindByUserID returns the caller's bookings, newest first.
func (r *BookingRepository) FindByUserID(ctx context.Context, userID string) ([]*readmodel.BookingRM, error) {
	const q = selectColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, toBookingRM(b))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

// ConfirmBySession performs the single atomic pending → confirmed update
// keyed by the gateway session reference. A zero-row update is classified
// afterwards so duplicate webhook deliveries and unknown sessions can both be
// acknowledged as no-ops.
func (r *BookingRepository) ConfirmBySession(ctx context.Context, sessionID string, now time.Time) (ConfirmOutcome, error) {
	const q = `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE payment_session_id = $3 AND status = $4`

	tag, err := r.db.Exec(ctx, q,
		booking.StatusConfirmed.String(),
		pgconv.TimeToPgtype(now),
		sessionID,
		booking.StatusPending.String(),
	)
	if err != nil {
		return ConfirmOutcomeNotFound, infra.WrapRepoErr("failed to confirm booking", err)
	}
	if tag.RowsAffected() > 0 {
		return ConfirmOutcomeConfirmed, nil
	}

	const statusQ = `SELECT status FROM bookings WHERE payment_session_id = $1`
	var status string
	if err := r.db.QueryRow(ctx, statusQ, sessionID).Scan(&status); err != nil {
		if pgconv.IsNoRows(err) {
			return ConfirmOutcomeNotFound, nil
		}
		return ConfirmOutcomeNotFound, infra.WrapRepoErr("failed to classify confirm outcome", err)
	}
	if status == booking.StatusConfirmed.String() {
		return ConfirmOutcomeAlreadyConfirmed, nil
	}
	return ConfirmOutcomeNotFound, nil
}

// DeleteOwned removes a booking only when it belongs to userID and is not
// confirmed. The guard is part of the statement so the cancel cannot
// interleave with a concurrent confirm.
func (r *BookingRepository) DeleteOwned(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	const q = `
		DELETE FROM bookings
		WHERE id = $1 AND user_id = $2 AND status <> $3`

	tag, err := r.db.Exec(ctx, q,
		pgconv.UUIDToPgtype(id),
		userID,
		booking.StatusConfirmed.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

const selectColumns = `
	SELECT id, user_id, room_id, room_name, stay_date,
	       base_price, weather_charge, final_price,
	       status, payment_session_id, created_at, updated_at`

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id               pgtype.UUID
		userID           string
		roomID           string
		roomName         string
		stayDate         pgtype.Date
		basePrice        float64
		weatherCharge    float64
		finalPrice       float64
		status           string
		paymentSessionID string
		createdAt        pgtype.Timestamptz
		updatedAt        pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &userID, &roomID, &roomName, &stayDate,
		&basePrice, &weatherCharge, &finalPrice,
		&status, &paymentSessionID, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := booking.ReconstructPriceBreakdown(basePrice, weatherCharge, finalPrice)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		pgconv.UUIDFromPgtype(id),
		userID,
		roomID,
		roomName,
		booking.StayDateFromTime(pgconv.DateFromPgtype(stayDate)),
		price,
		booking.Status(status),
		paymentSessionID,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func toBookingRM(b *booking.Booking) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:               b.ID(),
		UserID:           b.UserID(),
		RoomID:           b.RoomID(),
		RoomName:         b.RoomName(),
		Date:             b.Date().String(),
		BasePrice:        b.Price().BasePrice(),
		WeatherCharge:    b.Price().WeatherCharge(),
		FinalPrice:       b.Price().FinalPrice(),
		Status:           b.Status().String(),
		PaymentSessionID: b.PaymentSessionID(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

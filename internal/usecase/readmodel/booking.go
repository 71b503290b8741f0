package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the read-side snapshot of a booking as stored, including the
// full price breakdown computed at creation time.
type BookingRM struct {
	ID               uuid.UUID `json:"id"`
	UserID           string    `json:"user_id"`
	RoomID           string    `json:"room_id"`
	RoomName         string    `json:"room_name"`
	Date             string    `json:"date"`
	BasePrice        float64   `json:"base_price"`
	WeatherCharge    float64   `json:"weather_charge"`
	FinalPrice       float64   `json:"final_price"`
	Status           string    `json:"status"`
	PaymentSessionID string    `json:"payment_session_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

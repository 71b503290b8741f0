package response

import (
	"time"

	"weatherstay/internal/usecase"
	"weatherstay/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// CreateBookingResponse returns the redirect target for completing payment.
// The price breakdown is deliberately absent here; it becomes visible through
// the list endpoint once the booking exists.
type CreateBookingResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	CheckoutURL string    `json:"checkoutUrl"`
}

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomID        string    `json:"roomId"`
	RoomName      string    `json:"roomName"`
	Date          string    `json:"date"`
	BasePrice     float64   `json:"basePrice"`
	WeatherCharge float64   `json:"weatherCharge"`
	FinalPrice    float64   `json:"finalPrice"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromCreateBookingResult(result *usecase.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:   result.BookingID,
		CheckoutURL: result.CheckoutURL,
	}
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:            rm.ID,
		RoomID:        rm.RoomID,
		RoomName:      rm.RoomName,
		Date:          rm.Date,
		BasePrice:     rm.BasePrice,
		WeatherCharge: rm.WeatherCharge,
		FinalPrice:    rm.FinalPrice,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

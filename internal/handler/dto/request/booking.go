package request

import "strings"

type CreateBookingRequest struct {
	RoomID string `json:"room_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

func (r CreateBookingRequest) TrimmedRoomID() string {
	return strings.TrimSpace(r.RoomID)
}

func (r CreateBookingRequest) TrimmedDate() string {
	return strings.TrimSpace(r.Date)
}

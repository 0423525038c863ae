package dto

import (
	"roomlist/internal/domains/link/model"
	"roomlist/shared/constant"
)

type LinkResponse struct {
	ID            int64  `json:"id"`
	RoomingListID int64  `json:"roomingListId"`
	BookingID     int64  `json:"bookingId"`
	CreatedAt     string `json:"created_at"`
}

func (r *LinkResponse) FromModel(model model.RoomingListBooking) {
	r.ID = model.ID
	r.RoomingListID = model.RoomingListID
	r.BookingID = model.BookingID
	r.CreatedAt = model.CreatedAt.Format(constant.DateTimeFormat)
}

package model

import "time"

const (
	TableName  = "rooming_list_bookings"
	EntityName = "rooming list booking"

	FieldID            = "id"
	FieldRoomingListID = "rooming_list_id"
	FieldBookingID     = "booking_id"
	FieldCreatedAt     = "created_at"
)

type RoomingListBooking struct {
	ID            int64     `db:"id"`
	RoomingListID int64     `db:"rooming_list_id"`
	BookingID     int64     `db:"booking_id"`
	CreatedAt     time.Time `db:"created_at"`
}

package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "booking_id"
	FieldHotelID          = "hotel_id"
	FieldEventID          = "event_id"
	FieldGuestName        = "guest_name"
	FieldGuestPhoneNumber = "guest_phone_number"
	FieldCheckInDate      = "check_in_date"
	FieldCheckOutDate     = "check_out_date"
	FieldCreatedAt        = "created_at"
)

type Booking struct {
	BookingID        int64     `db:"booking_id"`
	HotelID          int64     `db:"hotel_id"`
	EventID          int64     `db:"event_id"`
	GuestName        string    `db:"guest_name"`
	GuestPhoneNumber *string   `db:"guest_phone_number"`
	CheckInDate      time.Time `db:"check_in_date"`
	CheckOutDate     time.Time `db:"check_out_date"`
	CreatedAt        time.Time `db:"created_at"`
}

// BookingWithEvent is the listing row joined with the event name.
// EventName is nil when the referenced event no longer exists.
type BookingWithEvent struct {
	Booking
	EventName *string `db:"event_name"`
}

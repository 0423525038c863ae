package dto

import (
	"time"

	"roomlist/internal/domains/booking/model"
	"roomlist/shared/constant"
	"roomlist/shared/timezone"
)

type CreateBookingRequest struct {
	HotelID          int64   `json:"hotelId"          validate:"required"`
	EventID          int64   `json:"eventId"          validate:"required"`
	GuestName        string  `json:"guestName"        validate:"required,max=255"`
	GuestPhoneNumber *string `json:"guestPhoneNumber" validate:"omitempty,max=50"`
	CheckInDate      string  `json:"checkInDate"      validate:"required,datetime=2006-01-02"`
	CheckOutDate     string  `json:"checkOutDate"     validate:"required,datetime=2006-01-02"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return model.Booking{
		HotelID:          c.HotelID,
		EventID:          c.EventID,
		GuestName:        c.GuestName,
		GuestPhoneNumber: c.GuestPhoneNumber,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		CreatedAt:        timezone.Now(),
	}, nil
}

type UpdateBookingRequest struct {
	HotelID          int64   `db:"hotel_id"           json:"hotelId"          validate:"omitempty"`
	EventID          int64   `db:"event_id"           json:"eventId"          validate:"omitempty"`
	GuestName        string  `db:"guest_name"         json:"guestName"        validate:"omitempty,max=255"`
	GuestPhoneNumber *string `db:"guest_phone_number" json:"guestPhoneNumber" validate:"omitempty,max=50"`
	CheckInDate      string  `db:"check_in_date"      json:"checkInDate"      validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate     string  `db:"check_out_date"     json:"checkOutDate"     validate:"omitempty,datetime=2006-01-02"`
}

type BookingResponse struct {
	BookingID        int64   `json:"bookingId"`
	HotelID          int64   `json:"hotelId"`
	EventID          int64   `json:"eventId"`
	GuestName        string  `json:"guestName"`
	GuestPhoneNumber *string `json:"guestPhoneNumber"`
	CheckInDate      string  `json:"checkInDate"`
	CheckOutDate     string  `json:"checkOutDate"`
	CreatedAt        string  `json:"created_at"`
}

func formatDate(t time.Time) string {
	return t.Format(constant.DateFormat)
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.BookingID
	r.HotelID = model.HotelID
	r.EventID = model.EventID
	r.GuestName = model.GuestName
	r.GuestPhoneNumber = model.GuestPhoneNumber
	r.CheckInDate = formatDate(model.CheckInDate)
	r.CheckOutDate = formatDate(model.CheckOutDate)
	r.CreatedAt = model.CreatedAt.Format(constant.DateTimeFormat)
}

type BookingWithEventResponse struct {
	BookingResponse
	EventName *string `json:"eventName"`
}

func (r *BookingWithEventResponse) FromModel(model model.BookingWithEvent) {
	r.BookingResponse.FromModel(model.Booking)
	r.EventName = model.EventName
}

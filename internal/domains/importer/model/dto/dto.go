package dto

import (
	bookingModel "roomlist/internal/domains/booking/model"
	linkModel "roomlist/internal/domains/link/model"
	roomingListModel "roomlist/internal/domains/roominglist/model"
	"roomlist/shared/constant"
	"roomlist/shared/timezone"
)

// BookingRecord is the shape of one entry in the bookings source file.
type BookingRecord struct {
	BookingID        int64   `json:"bookingId"        validate:"required"`
	HotelID          int64   `json:"hotelId"          validate:"required"`
	EventID          int64   `json:"eventId"          validate:"required"`
	GuestName        string  `json:"guestName"        validate:"required,max=255"`
	GuestPhoneNumber *string `json:"guestPhoneNumber" validate:"omitempty,max=50"`
	CheckInDate      string  `json:"checkInDate"      validate:"required,datetime=2006-01-02"`
	CheckOutDate     string  `json:"checkOutDate"     validate:"required,datetime=2006-01-02"`
}

func (r *BookingRecord) ToModel() (bookingModel.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, r.CheckInDate)
	if err != nil {
		return bookingModel.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateFormat, r.CheckOutDate)
	if err != nil {
		return bookingModel.Booking{}, err //nolint:wrapcheck
	}

	return bookingModel.Booking{
		BookingID:        r.BookingID,
		HotelID:          r.HotelID,
		EventID:          r.EventID,
		GuestName:        r.GuestName,
		GuestPhoneNumber: r.GuestPhoneNumber,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		CreatedAt:        timezone.Now(),
	}, nil
}

// RoomingListRecord is the shape of one entry in the rooming lists source file.
type RoomingListRecord struct {
	RoomingListID int64  `json:"roomingListId"  validate:"required"`
	EventID       int64  `json:"eventId"        validate:"required"`
	HotelID       int64  `json:"hotelId"        validate:"required"`
	RFPName       string `json:"rfpName"        validate:"required,max=255"`
	CutOffDate    string `json:"cutOffDate"     validate:"required,datetime=2006-01-02"`
	Status        string `json:"status"         validate:"omitempty,oneof=Active Closed Cancelled"`
	AgreementType string `json:"agreement_type" validate:"required,oneof=leisure staff artist"`
}

func (r *RoomingListRecord) ToModel() (roomingListModel.RoomingList, error) {
	cutOff, err := timezone.Parse(constant.DateFormat, r.CutOffDate)
	if err != nil {
		return roomingListModel.RoomingList{}, err //nolint:wrapcheck
	}

	status := roomingListModel.Status(r.Status)
	if r.Status == "" {
		status = roomingListModel.StatusActive
	}

	return roomingListModel.RoomingList{
		RoomingListID: r.RoomingListID,
		EventID:       r.EventID,
		HotelID:       r.HotelID,
		RFPName:       r.RFPName,
		CutOffDate:    cutOff,
		Status:        status,
		AgreementType: roomingListModel.AgreementType(r.AgreementType),
		CreatedAt:     timezone.Now(),
	}, nil
}

// LinkRecord is the shape of one entry in the rooming list bookings source file.
type LinkRecord struct {
	RoomingListID int64 `json:"roomingListId" validate:"required"`
	BookingID     int64 `json:"bookingId"     validate:"required"`
}

func (r *LinkRecord) ToModel() linkModel.RoomingListBooking {
	return linkModel.RoomingListBooking{
		RoomingListID: r.RoomingListID,
		BookingID:     r.BookingID,
		CreatedAt:     timezone.Now(),
	}
}

type ImportResult struct {
	EventsDerived        int `json:"eventsDerived"`
	BookingsInserted     int `json:"bookingsInserted"`
	RoomingListsInserted int `json:"roomingListsInserted"`
	LinksInserted        int `json:"roomingListBookingsInserted"`
}

type DataStatusResponse struct {
	Events              int `json:"events"`
	Bookings            int `json:"bookings"`
	RoomingLists        int `json:"roomingLists"`
	RoomingListBookings int `json:"roomingListBookings"`
}

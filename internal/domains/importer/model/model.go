package model

import (
	bookingModel "roomlist/internal/domains/booking/model"
	eventModel "roomlist/internal/domains/event/model"
	linkModel "roomlist/internal/domains/link/model"
	roomingListModel "roomlist/internal/domains/roominglist/model"
)

// ImportData is the fully parsed and validated payload handed to the
// replace transaction. Identifiers come from the source files verbatim.
type ImportData struct {
	Events       []eventModel.Event
	Bookings     []bookingModel.Booking
	RoomingLists []roomingListModel.RoomingList
	Links        []linkModel.RoomingListBooking
}

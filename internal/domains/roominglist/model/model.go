package model

import "time"

const (
	TableName  = "rooming_lists"
	EntityName = "rooming list"

	FieldID            = "rooming_list_id"
	FieldEventID       = "event_id"
	FieldHotelID       = "hotel_id"
	FieldRFPName       = "rfp_name"
	FieldCutOffDate    = "cut_off_date"
	FieldStatus        = "status"
	FieldAgreementType = "agreement_type"
	FieldCreatedAt     = "created_at"
)

// Status is the closed lifecycle state of a rooming list.
type Status string

const (
	StatusActive    Status = "Active"
	StatusClosed    Status = "Closed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusClosed, StatusCancelled:
		return true
	}

	return false
}

// AgreementType classifies the purpose of a rooming list.
type AgreementType string

const (
	AgreementLeisure AgreementType = "leisure"
	AgreementStaff   AgreementType = "staff"
	AgreementArtist  AgreementType = "artist"
)

func (a AgreementType) Valid() bool {
	switch a {
	case AgreementLeisure, AgreementStaff, AgreementArtist:
		return true
	}

	return false
}

type RoomingList struct {
	RoomingListID int64         `db:"rooming_list_id"`
	EventID       int64         `db:"event_id"`
	HotelID       int64         `db:"hotel_id"`
	RFPName       string        `db:"rfp_name"`
	CutOffDate    time.Time     `db:"cut_off_date"`
	Status        Status        `db:"status"`
	AgreementType AgreementType `db:"agreement_type"`
	CreatedAt     time.Time     `db:"created_at"`
}

// RoomingListWithEvent is the listing row joined with the event name and
// the number of linked bookings. EventName is nil when the referenced
// event no longer exists.
type RoomingListWithEvent struct {
	RoomingList
	EventName    *string `db:"event_name"`
	BookingCount int     `db:"booking_count"`
}

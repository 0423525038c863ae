package model

import "time"

const (
	TableName  = "events"
	EntityName = "event"

	FieldID          = "event_id"
	FieldEventName   = "event_name"
	FieldDescription = "description"
	FieldCreatedAt   = "created_at"
)

type Event struct {
	EventID     int64     `db:"event_id"`
	EventName   string    `db:"event_name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// EventWithCounts carries the aggregate columns produced by the listing join;
// it is scanned from custom SQL only and never inserted.
type EventWithCounts struct {
	Event
	RoomingListCount int `db:"rooming_list_count"`
	BookingCount     int `db:"booking_count"`
}

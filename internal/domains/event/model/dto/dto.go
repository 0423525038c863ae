package dto

import (
	"roomlist/internal/domains/event/model"
	"roomlist/shared/constant"
	"roomlist/shared/timezone"
)

type CreateEventRequest struct {
	EventName   string  `json:"eventName"   validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateEventRequest) ToModel() model.Event {
	return model.Event{
		EventName:   c.EventName,
		Description: c.Description,
		CreatedAt:   timezone.Now(),
	}
}

type UpdateEventRequest struct {
	EventName   string  `db:"event_name"  json:"eventName"   validate:"omitempty,max=255"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=1000"`
}

type EventResponse struct {
	EventID     int64   `json:"eventId"`
	EventName   string  `json:"eventName"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

func (r *EventResponse) FromModel(model model.Event) {
	r.EventID = model.EventID
	r.EventName = model.EventName
	r.Description = model.Description
	r.CreatedAt = model.CreatedAt.Format(constant.DateTimeFormat)
}

type EventWithCountsResponse struct {
	EventResponse
	RoomingListCount int `json:"roomingListCount"`
	BookingCount     int `json:"bookingCount"`
}

func (r *EventWithCountsResponse) FromModel(model model.EventWithCounts) {
	r.EventResponse.FromModel(model.Event)
	r.RoomingListCount = model.RoomingListCount
	r.BookingCount = model.BookingCount
}

package dto

import (
	"roomlist/internal/domains/roominglist/model"
	"roomlist/shared/constant"
	"roomlist/shared/timezone"
)

type CreateRoomingListRequest struct {
	EventID       int64  `json:"eventId"        validate:"required"`
	HotelID       int64  `json:"hotelId"        validate:"required"`
	RFPName       string `json:"rfpName"        validate:"required,max=255"`
	CutOffDate    string `json:"cutOffDate"     validate:"required,datetime=2006-01-02"`
	Status        string `json:"status"         validate:"omitempty,oneof=Active Closed Cancelled"`
	AgreementType string `json:"agreement_type" validate:"required,oneof=leisure staff artist"`
}

func (c *CreateRoomingListRequest) ToModel() (model.RoomingList, error) {
	cutOff, err := timezone.Parse(constant.DateFormat, c.CutOffDate)
	if err != nil {
		return model.RoomingList{}, err //nolint:wrapcheck
	}

	status := model.Status(c.Status)
	if c.Status == "" {
		status = model.StatusActive
	}

	return model.RoomingList{
		EventID:       c.EventID,
		HotelID:       c.HotelID,
		RFPName:       c.RFPName,
		CutOffDate:    cutOff,
		Status:        status,
		AgreementType: model.AgreementType(c.AgreementType),
		CreatedAt:     timezone.Now(),
	}, nil
}

type UpdateRoomingListRequest struct {
	EventID       int64  `db:"event_id"       json:"eventId"        validate:"omitempty"`
	HotelID       int64  `db:"hotel_id"       json:"hotelId"        validate:"omitempty"`
	RFPName       string `db:"rfp_name"       json:"rfpName"        validate:"omitempty,max=255"`
	CutOffDate    string `db:"cut_off_date"   json:"cutOffDate"     validate:"omitempty,datetime=2006-01-02"`
	Status        string `db:"status"         json:"status"         validate:"omitempty,oneof=Active Closed Cancelled"`
	AgreementType string `db:"agreement_type" json:"agreement_type" validate:"omitempty,oneof=leisure staff artist"`
}

type RoomingListResponse struct {
	RoomingListID int64  `json:"roomingListId"`
	EventID       int64  `json:"eventId"`
	HotelID       int64  `json:"hotelId"`
	RFPName       string `json:"rfpName"`
	CutOffDate    string `json:"cutOffDate"`
	Status        string `json:"status"`
	AgreementType string `json:"agreement_type"`
	CreatedAt     string `json:"created_at"`
}

func (r *RoomingListResponse) FromModel(model model.RoomingList) {
	r.RoomingListID = model.RoomingListID
	r.EventID = model.EventID
	r.HotelID = model.HotelID
	r.RFPName = model.RFPName
	r.CutOffDate = model.CutOffDate.Format(constant.DateFormat)
	r.Status = string(model.Status)
	r.AgreementType = string(model.AgreementType)
	r.CreatedAt = model.CreatedAt.Format(constant.DateTimeFormat)
}

type RoomingListWithEventResponse struct {
	RoomingListResponse
	EventName    *string `json:"eventName"`
	BookingCount int     `json:"bookingCount"`
}

func (r *RoomingListWithEventResponse) FromModel(model model.RoomingListWithEvent) {
	r.RoomingListResponse.FromModel(model.RoomingList)
	r.EventName = model.EventName
	r.BookingCount = model.BookingCount
}

package validator_test

import (
	"roomlist/shared/failure"
	"roomlist/shared/validator"
	"strings"
	"testing"
)

type createRoomingListPayload struct {
	EventID       int64  `json:"eventId"        validate:"required"`
	HotelID       int64  `json:"hotelId"        validate:"required"`
	RfpName       string `json:"rfpName"        validate:"required,max=255"`
	CutOffDate    string `json:"cutOffDate"     validate:"required"`
	Status        string `json:"status"         validate:"omitempty,oneof=Active Closed Cancelled"`
	AgreementType string `json:"agreement_type" validate:"required,oneof=leisure staff artist"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		errContains string
	}{
		{
			name:        "valid payload",
			body:        `{"eventId":10,"hotelId":5,"rfpName":"ACL-2024","cutOffDate":"2024-01-01","agreement_type":"leisure"}`,
			expectError: false,
		},
		{
			name:        "missing required field",
			body:        `{"eventId":10,"hotelId":5,"cutOffDate":"2024-01-01","agreement_type":"leisure"}`,
			expectError: true,
			errContains: "RfpName is required",
		},
		{
			name:        "agreement type outside closed set",
			body:        `{"eventId":10,"hotelId":5,"rfpName":"X","cutOffDate":"2024-01-01","agreement_type":"vip"}`,
			expectError: true,
			errContains: "AgreementType must be one of leisure staff artist",
		},
		{
			name:        "status outside closed set",
			body:        `{"eventId":10,"hotelId":5,"rfpName":"X","cutOffDate":"2024-01-01","status":"Paused","agreement_type":"staff"}`,
			expectError: true,
			errContains: "Status must be one of Active Closed Cancelled",
		},
		{
			name:        "malformed json",
			body:        `{"eventId":`,
			expectError: true,
			errContains: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createRoomingListPayload{}

			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if !tt.expectError {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if failure.GetCode(err) != 400 {
				t.Errorf("expected code 400, got %d", failure.GetCode(err))
			}

			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("leisure", "oneof=leisure staff artist"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("vip", "oneof=leisure staff artist"); err == nil {
		t.Error("expected error for out-of-set value, got nil")
	}
}

package failure_test

import (
	"errors"
	"net/http"
	"roomlist/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failure.BadRequest(tt.input)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}

				return
			}

			if got.Error() != tt.expected.Error() {
				t.Errorf("expected message %s, got %s", tt.expected.Error(), got.Error())
			}

			if failure.GetCode(got) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(got))
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "bad request failure",
			input:    failure.BadRequestFromString("bad input"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "not found failure",
			input:    failure.NotFound("booking not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "unauthorized failure",
			input:    failure.Unauthorized("missing token"),
			expected: http.StatusUnauthorized,
		},
		{
			name:     "internal failure",
			input:    failure.InternalError(errors.New("db gone")),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "plain error",
			input:    errors.New("unknown"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}

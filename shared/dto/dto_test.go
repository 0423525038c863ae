package dto_test

import (
	"net/http"
	"net/url"
	"roomlist/shared/dto"
	"testing"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "rfp_name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "rfp_name",
				SortDir: "ASC",
			},
		},
		{
			name:           "empty request without defaults",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "empty request with defaults",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  1,
				Limit: 10,
			},
		},
		{
			name: "invalid numbers ignored",
			queryParams: map[string]string{
				"page":  "-1",
				"limit": "abc",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "sort dir normalized to upper case",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			got := dto.QueryParams{}
			got.FromRequest(req, tt.defaultRequest)

			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "event_id",
				Operator: dto.FilterOperatorEq,
				Value:    int64(10),
				Table:    "rooming_lists",
			},
			dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "Active",
				Table:    "rooming_lists",
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(rooming_lists.event_id = :event_id AND rooming_lists.status = :status)"
	if where != expected {
		t.Errorf("expected where clause %q, got %q", expected, where)
	}

	if args["event_id"] != int64(10) {
		t.Errorf("expected event_id arg to be 10, got %v", args["event_id"])
	}

	if args["status"] != "Active" {
		t.Errorf("expected status arg to be Active, got %v", args["status"])
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

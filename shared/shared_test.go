package shared_test

import (
	"roomlist/shared"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("limiter", "10.0.0.1", "curl"); got != "limiter:10.0.0.1:curl" {
		t.Errorf("expected limiter:10.0.0.1:curl, got %s", got)
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		RfpName       string `db:"rfp_name"`
		Status        string `db:"status"`
		CutOffDate    string `db:"cut_off_date"`
		AgreementType string `db:"agreement_type"`
		Ignored       string
	}

	req := updateRequest{
		Status:  "Closed",
		Ignored: "no db tag",
	}

	fields := shared.TransformFields(req)

	if len(fields) != 1 {
		t.Fatalf("expected exactly one set field, got %d: %v", len(fields), fields)
	}

	if fields["status"] != "Closed" {
		t.Errorf("expected status to be Closed, got %v", fields["status"])
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(100, "rooming_list_id", "rooming_lists")

	where, args := filter.GetWhereClause()

	if where != "(rooming_lists.rooming_list_id = :rooming_list_id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["rooming_list_id"] != int64(100) {
		t.Errorf("expected id arg 100, got %v", args["rooming_list_id"])
	}
}

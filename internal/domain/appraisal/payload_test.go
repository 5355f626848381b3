package appraisal

import (
	"errors"
	"testing"
)

func TestBuildPayloadAppraisalRatingDerivation(t *testing.T) {
	table := DefaultMetricTable()
	task := Task{ID: "t1", Name: "Performance Appraisal", Kind: KindAppraisal}

	for rating := 1; rating <= 5; rating++ {
		draft := Draft{Note: "rated", Kind: KindAppraisal, Rating: intPtr(rating)}
		payload := BuildPayload(draft, task, 42, table)

		if payload.ProgressPercent != rating*20 {
			t.Fatalf("rating %d: expected percent %d, got %d", rating, rating*20, payload.ProgressPercent)
		}
		if payload.Rating == nil || *payload.Rating != rating {
			t.Fatalf("rating %d: expected rating included, got %v", rating, payload.Rating)
		}
	}
}

func TestBuildPayloadRegularOmitsRating(t *testing.T) {
	table := DefaultMetricTable()
	task := Task{ID: "t1", Name: "Sales Target", Kind: KindRegular}

	for _, p := range []int{1, 45, 100} {
		draft := Draft{Note: "progress", Kind: KindRegular, Percent: intPtr(p)}
		payload := BuildPayload(draft, task, 42, table)

		if payload.ProgressPercent != p {
			t.Fatalf("expected percent %d, got %d", p, payload.ProgressPercent)
		}
		if payload.Rating != nil {
			t.Fatalf("regular task must omit rating, got %d", *payload.Rating)
		}
	}
}

func TestBuildPayloadMetricMapSparseButComplete(t *testing.T) {
	table := DefaultMetricTable()
	task := Task{ID: "t1", Name: "Sales Target", Kind: KindRegular}
	payload := BuildPayload(Draft{Note: "progress", Kind: KindRegular, Percent: intPtr(45)}, task, 42, table)

	for _, key := range table.Keys() {
		value, present := payload.Metrics[key]
		if !present {
			t.Fatalf("known key %q missing from metric map", key)
		}
		if key == "salesTarget" {
			if value != 45 {
				t.Fatalf("matched key must carry the value, got %d", value)
			}
		} else if value != 0 {
			t.Fatalf("unmatched key %q must be zero, got %d", key, value)
		}
	}

	// The display name rides along as a redundant key with the same value.
	if payload.Metrics["Sales Target"] != 45 {
		t.Fatalf("expected redundant display-name key, got %+v", payload.Metrics)
	}
}

func TestBuildPayloadUnknownTaskFallsBackToGeneral(t *testing.T) {
	table := DefaultMetricTable()
	task := Task{ID: "t1", Name: "Mystery Initiative", Kind: KindRegular}
	payload := BuildPayload(Draft{Note: "progress", Kind: KindRegular, Percent: intPtr(30)}, task, 42, table)

	if payload.Metrics[GeneralMetricKey] != 30 {
		t.Fatalf("expected fallback key to carry value, got %+v", payload.Metrics)
	}
}

func TestMetricTableKeyFor(t *testing.T) {
	table := DefaultMetricTable()

	cases := []struct {
		name string
		want string
	}{
		{"Sales Target", "salesTarget"},
		{"sales target", "salesTarget"},
		{"Q3 Sales Target Push", "salesTarget"},
		{"Attendance", "attendance"},
		{"Something Else Entirely", GeneralMetricKey},
		{"", GeneralMetricKey},
	}
	for _, tc := range cases {
		if got := table.KeyFor(tc.name); got != tc.want {
			t.Fatalf("KeyFor(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestResolveEmployeeID(t *testing.T) {
	cases := []struct {
		code    string
		want    int
		wantErr bool
	}{
		{"EMP-0042", 42, false},
		{"42", 42, false},
		{"emp007", 7, false},
		{"EMP-", 0, true},
		{"", 0, true},
		{"no digits here", 0, true},
		{"EMP-99999999999999999999999999", 0, true},
	}
	for _, tc := range cases {
		got, err := ResolveEmployeeID(tc.code)
		if tc.wantErr {
			if !errors.Is(err, ErrEmployeeIDInvalid) {
				t.Fatalf("ResolveEmployeeID(%q): expected ErrEmployeeIDInvalid, got %v", tc.code, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ResolveEmployeeID(%q): unexpected error %v", tc.code, err)
		}
		if got != tc.want {
			t.Fatalf("ResolveEmployeeID(%q) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

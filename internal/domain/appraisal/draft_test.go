package appraisal

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func openTask(kind TaskKind) Task {
	return Task{ID: "t1", Name: "Sales Target", Kind: kind, EndDate: "2030-12-31"}
}

func TestValidateDraftPastDueWinsFirst(t *testing.T) {
	task := Task{ID: "t1", Kind: KindRegular, EndDate: "2025-01-01"}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Even a draft that would fail every field rule reports past-due.
	err := ValidateDraft(Draft{Note: "x"}, task, now)
	if !errors.Is(err, ErrTaskPastDue) {
		t.Fatalf("expected ErrTaskPastDue, got %v", err)
	}
}

func TestValidateDraftNoteBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task := openTask(KindRegular)

	err := ValidateDraft(Draft{Note: "abcd", Percent: intPtr(10)}, task, now)
	if !errors.Is(err, ErrNoteTooShort) {
		t.Fatalf("4-char note: expected ErrNoteTooShort, got %v", err)
	}

	err = ValidateDraft(Draft{Note: "  abcd  ", Percent: intPtr(10)}, task, now)
	if !errors.Is(err, ErrNoteTooShort) {
		t.Fatalf("padding must not count toward length, got %v", err)
	}

	err = ValidateDraft(Draft{Note: "abcde", Kind: KindRegular, Percent: intPtr(10)}, task, now)
	if err != nil {
		t.Fatalf("5-char note must pass, got %v", err)
	}

	long := strings.Repeat("a", 1000)
	err = ValidateDraft(Draft{Note: long, Kind: KindRegular, Percent: intPtr(10)}, task, now)
	if err != nil {
		t.Fatalf("1000-char note must pass, got %v", err)
	}

	err = ValidateDraft(Draft{Note: long + "a", Kind: KindRegular, Percent: intPtr(10)}, task, now)
	if !errors.Is(err, ErrNoteTooLong) {
		t.Fatalf("1001-char note: expected ErrNoteTooLong, got %v", err)
	}

	// Bounds are character counts: multibyte text must not be measured in
	// bytes at either end.
	err = ValidateDraft(Draft{Note: "éééé", Kind: KindRegular, Percent: intPtr(10)}, task, now)
	if !errors.Is(err, ErrNoteTooShort) {
		t.Fatalf("4-char multibyte note: expected ErrNoteTooShort, got %v", err)
	}

	err = ValidateDraft(Draft{Note: "ééééé", Kind: KindRegular, Percent: intPtr(10)}, task, now)
	if err != nil {
		t.Fatalf("5-char multibyte note must pass, got %v", err)
	}

	longMultibyte := strings.Repeat("é", 1000)
	err = ValidateDraft(Draft{Note: longMultibyte, Kind: KindRegular, Percent: intPtr(10)}, task, now)
	if err != nil {
		t.Fatalf("1000-char multibyte note must pass, got %v", err)
	}

	err = ValidateDraft(Draft{Note: longMultibyte + "é", Kind: KindRegular, Percent: intPtr(10)}, task, now)
	if !errors.Is(err, ErrNoteTooLong) {
		t.Fatalf("1001-char multibyte note: expected ErrNoteTooLong, got %v", err)
	}
}

func TestValidateDraftAppraisalRating(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task := openTask(KindAppraisal)

	cases := []struct {
		name   string
		rating *int
		want   error
	}{
		{"absent", nil, ErrRatingRequired},
		{"below range", intPtr(0), ErrRatingRequired},
		{"above range", intPtr(6), ErrRatingRequired},
		{"minimum", intPtr(1), nil},
		{"maximum", intPtr(5), nil},
	}
	for _, tc := range cases {
		err := ValidateDraft(Draft{Note: "quarterly review", Kind: KindAppraisal, Rating: tc.rating}, task, now)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateDraftRegularProgressStricterThanStorage(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task := openTask(KindRegular)

	// Zero is a legal stored value but an illegal submission: the employee
	// must actually move the progress control.
	err := ValidateDraft(Draft{Note: "still working", Kind: KindRegular, Percent: intPtr(0)}, task, now)
	if !errors.Is(err, ErrProgressRequired) {
		t.Fatalf("zero progress: expected ErrProgressRequired, got %v", err)
	}

	err = ValidateDraft(Draft{Note: "still working", Kind: KindRegular}, task, now)
	if !errors.Is(err, ErrProgressRequired) {
		t.Fatalf("absent progress: expected ErrProgressRequired, got %v", err)
	}

	err = ValidateDraft(Draft{Note: "still working", Kind: KindRegular, Percent: intPtr(101)}, task, now)
	if !errors.Is(err, ErrProgressRange) {
		t.Fatalf("101%%: expected ErrProgressRange, got %v", err)
	}

	for _, p := range []int{1, 45, 100} {
		if err := ValidateDraft(Draft{Note: "still working", Kind: KindRegular, Percent: intPtr(p)}, task, now); err != nil {
			t.Fatalf("%d%% must pass, got %v", p, err)
		}
	}
}

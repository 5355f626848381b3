package appraisal

import (
	"testing"
	"time"
)

func TestElapsedTimelineBoundaries(t *testing.T) {
	start := "2025-03-01T00:00:00Z"
	end := "2025-03-11T00:00:00Z"

	atStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tl := ElapsedTimeline(start, end, atStart)
	if tl.State != TimelineNotStarted || tl.Percent != 0 {
		t.Fatalf("expected {0, not_started} at window start, got %+v", tl)
	}

	atEnd := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	tl = ElapsedTimeline(start, end, atEnd)
	if tl.State != TimelineOverdue || tl.Percent != 100 {
		t.Fatalf("expected {100, overdue} at window end, got %+v", tl)
	}

	midway := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	tl = ElapsedTimeline(start, end, midway)
	if tl.State != TimelineOnTrack || tl.Percent != 50 {
		t.Fatalf("expected {50, on_track} midway, got %+v", tl)
	}
}

func TestElapsedTimelineDegradedInputs(t *testing.T) {
	now := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)

	tl := ElapsedTimeline("", "2025-03-11", now)
	if tl.State != TimelineNoDates || tl.Percent != 0 {
		t.Fatalf("expected no_dates for missing start, got %+v", tl)
	}
	tl = ElapsedTimeline("2025-03-01", "", now)
	if tl.State != TimelineNoDates {
		t.Fatalf("expected no_dates for missing end, got %+v", tl)
	}
	tl = ElapsedTimeline("not-a-date", "2025-03-11", now)
	if tl.State != TimelineInvalidDates || tl.Percent != 0 {
		t.Fatalf("expected invalid_dates, got %+v", tl)
	}
	tl = ElapsedTimeline("2025-03-01", "someday", now)
	if tl.State != TimelineInvalidDates {
		t.Fatalf("expected invalid_dates for bad end, got %+v", tl)
	}
}

func TestRemainingDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	days, ok := RemainingDays("2025-03-13", now)
	if !ok || days != 3 {
		t.Fatalf("expected 3 days remaining, got %d ok=%v", days, ok)
	}

	days, ok = RemainingDays("2025-03-08", now)
	if !ok || days != -2 {
		t.Fatalf("expected -2 (overdue), got %d ok=%v", days, ok)
	}

	if _, ok := RemainingDays("", now); ok {
		t.Fatal("expected missing end date to report not ok")
	}
	if _, ok := RemainingDays("soon", now); ok {
		t.Fatal("expected unparseable end date to report not ok")
	}
}

func TestRemainingLabel(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		end  string
		want string
	}{
		{"2025-03-13", "3 days left"},
		{"2025-03-11T06:00:00Z", "1 day left"},
		{"2025-03-10T12:00:00Z", "due today"},
		{"2025-03-08", "2 days overdue"},
		{"", "no due date"},
		{"garbage", "no due date"},
	}
	for _, tc := range cases {
		if got := RemainingLabel(tc.end, now); got != tc.want {
			t.Fatalf("RemainingLabel(%q) = %q, want %q", tc.end, got, tc.want)
		}
	}
}

func TestPastDueInclusiveThroughDueDay(t *testing.T) {
	end := "2025-03-10"

	lateSameDay := time.Date(2025, 3, 10, 23, 58, 0, 0, time.UTC)
	if PastDue(end, lateSameDay) {
		t.Fatal("23:58 on the due day must not be past due")
	}

	nextMorning := time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC)
	if !PastDue(end, nextMorning) {
		t.Fatal("00:01 the next day must be past due")
	}
}

func TestPastDuePermissiveDefaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if PastDue("", now) {
		t.Fatal("missing end date must never be past due")
	}
	if PastDue("whenever", now) {
		t.Fatal("unparseable end date must never be past due")
	}
}

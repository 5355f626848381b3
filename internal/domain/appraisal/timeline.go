package appraisal

import (
	"fmt"
	"math"
	"time"
)

type TimelineState string

const (
	TimelineNoDates      TimelineState = "no_dates"
	TimelineInvalidDates TimelineState = "invalid_dates"
	TimelineNotStarted   TimelineState = "not_started"
	TimelineOverdue      TimelineState = "overdue"
	TimelineOnTrack      TimelineState = "on_track"
)

type Timeline struct {
	Percent int           `json:"percentage"`
	State   TimelineState `json:"status"`
}

// parseInstant accepts RFC3339 or YYYY-MM-DD, the two shapes upstream emits.
func parseInstant(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ElapsedTimeline reports how much of the start..end window has passed at
// now, independent of actual work progress. Missing or unparseable dates
// degrade to a zero-percent sentinel state rather than an error.
func ElapsedTimeline(start, end string, now time.Time) Timeline {
	if start == "" || end == "" {
		return Timeline{Percent: 0, State: TimelineNoDates}
	}
	startAt, err := parseInstant(start)
	if err != nil {
		return Timeline{Percent: 0, State: TimelineInvalidDates}
	}
	endAt, err := parseInstant(end)
	if err != nil {
		return Timeline{Percent: 0, State: TimelineInvalidDates}
	}

	elapsed := now.Sub(startAt)
	total := endAt.Sub(startAt)
	if elapsed <= 0 {
		return Timeline{Percent: 0, State: TimelineNotStarted}
	}
	if elapsed >= total {
		return Timeline{Percent: 100, State: TimelineOverdue}
	}
	percent := int(math.Round(100 * float64(elapsed) / float64(total)))
	return Timeline{Percent: percent, State: TimelineOnTrack}
}

// RemainingDays returns the signed whole-day count until end. Negative means
// overdue, zero means due today. ok is false when the end date is missing or
// unparseable.
func RemainingDays(end string, now time.Time) (days int, ok bool) {
	if end == "" {
		return 0, false
	}
	endAt, err := parseInstant(end)
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(endAt.Sub(now).Hours() / 24)), true
}

// RemainingLabel renders RemainingDays as a user-facing string, with a
// descriptive sentinel when no usable end date exists.
func RemainingLabel(end string, now time.Time) string {
	days, ok := RemainingDays(end, now)
	if !ok {
		return "no due date"
	}
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// PastDue reports whether now is after the task's end date. Submissions stay
// open through the entire due day, so the cutoff is 23:59:59.999 of that day
// in the date's own location. Missing or unparseable end dates are never past
// due.
func PastDue(end string, now time.Time) bool {
	if end == "" {
		return false
	}
	endAt, err := parseInstant(end)
	if err != nil {
		return false
	}
	endOfDay := time.Date(endAt.Year(), endAt.Month(), endAt.Day(), 23, 59, 59, 999000000, endAt.Location())
	return now.After(endOfDay)
}

// TaskPastDue applies the past-due predicate to a task.
func TaskPastDue(task Task, now time.Time) bool {
	return PastDue(task.EndDate, now)
}

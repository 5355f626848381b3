package appraisal

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Draft is an in-progress submission as entered by the employee, before
// validation. Percent and Rating are pointers so "absent" is distinct from
// zero.
type Draft struct {
	Note     string
	Kind     TaskKind
	Percent  *int
	Rating   *int
	Document *Document
}

// ValidateDraft enforces the submission rules in order; the first failure
// wins and maps to a distinct sentinel error. The past-due gate runs first so
// no field-level feedback is given for a window that has already closed.
//
// Regular-task progress must be strictly greater than zero even though the
// stored range is 0..100: an untouched progress control is treated as "not
// filled in" rather than a legal zero.
func ValidateDraft(draft Draft, task Task, now time.Time) error {
	if TaskPastDue(task, now) {
		return ErrTaskPastDue
	}

	// Note bounds count characters, not bytes, so multibyte notes are
	// measured the same way the client-side counter measures them.
	note := strings.TrimSpace(draft.Note)
	if utf8.RuneCountInString(note) < NoteMinLength {
		return ErrNoteTooShort
	}
	if utf8.RuneCountInString(note) > NoteMaxLength {
		return ErrNoteTooLong
	}

	switch draft.Kind {
	case KindAppraisal:
		if draft.Rating == nil || *draft.Rating < RatingMin || *draft.Rating > RatingMax {
			return ErrRatingRequired
		}
	default:
		if draft.Percent == nil || *draft.Percent == 0 {
			return ErrProgressRequired
		}
		if *draft.Percent < 0 || *draft.Percent > 100 {
			return ErrProgressRange
		}
	}
	return nil
}

package appraisal

import "errors"

var (
	ErrTaskPastDue      = errors.New("task is past its due date; progress can no longer be submitted")
	ErrNoteTooShort     = errors.New("note must be at least 5 characters")
	ErrNoteTooLong      = errors.New("note must be at most 1000 characters")
	ErrRatingRequired   = errors.New("a rating between 1 and 5 is required")
	ErrProgressRequired = errors.New("set your progress before submitting")
	ErrProgressRange    = errors.New("progress must be between 1 and 100")

	ErrEmployeeIDInvalid = errors.New("employee identifier does not resolve to a numeric id")
	ErrTaskNotFound      = errors.New("task not found")
)

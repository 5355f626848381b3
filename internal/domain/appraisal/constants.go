package appraisal

const (
	TaskStatusActive    = "active"
	TaskStatusAttention = "attention"
	TaskStatusInactive  = "inactive"

	CompletionNotStarted = "not_started"
	CompletionPending    = "pending"
	CompletionInProgress = "in_progress"
	CompletionCompleted  = "completed"
)

const (
	NoteMinLength = 5
	NoteMaxLength = 1000

	RatingMin = 1
	RatingMax = 5

	// RatingPercentStep converts a 1-5 rating into a stored percentage.
	RatingPercentStep = 20

	// DashboardPageSize is the fixed page size of the task list.
	DashboardPageSize = 10
)

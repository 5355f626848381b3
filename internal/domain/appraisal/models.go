package appraisal

import "time"

// TaskKind selects the progress-reporting mode for a task. Regular tasks
// report a raw percentage; appraisal tasks report a 1-5 rating from which the
// percentage is derived.
type TaskKind string

const (
	KindRegular   TaskKind = "regular"
	KindAppraisal TaskKind = "performance_appraisal"
)

type Task struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Kind        TaskKind `json:"kpiType"`
	// Start/end arrive as strings from upstream and may be empty or
	// unparseable; timeline math degrades instead of failing.
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Status      string `json:"status"`
	Completion  string `json:"completionStatus"`
	CreatedAt   string `json:"createdAt,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

type Document struct {
	Name      string `json:"name"`
	SizeLabel string `json:"sizeLabel,omitempty"`
	MimeType  string `json:"mimeType,omitempty"`
	Content   []byte `json:"content,omitempty"`
}

// ProgressSubmission is one employee-authored update against a task.
// Submissions are immutable once created; they only accumulate.
type ProgressSubmission struct {
	ID              string         `json:"id"`
	TaskID          string         `json:"taskId"`
	EmployeeID      int            `json:"employeeId"`
	Note            string         `json:"note"`
	ProgressPercent int            `json:"progressPercentage"`
	Rating          *int           `json:"rating,omitempty"`
	Metrics         map[string]int `json:"performanceMetrics,omitempty"`
	Document        *Document      `json:"document,omitempty"`
	// DocumentPath is a legacy upstream field; some records carry the
	// attachment reference here instead of Document.
	DocumentPath string    `json:"documentPath,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Payload is the wire shape handed to TaskRepository.WriteSubmission,
// produced only by BuildPayload from an accepted draft.
type Payload struct {
	TaskID          string         `json:"taskId"`
	EmployeeID      int            `json:"employeeId"`
	Note            string         `json:"note"`
	ProgressPercent int            `json:"progressPercentage"`
	Rating          *int           `json:"rating,omitempty"`
	Metrics         map[string]int `json:"performanceMetrics"`
	Document        *Document      `json:"document,omitempty"`
}

// HasDocument reports whether any of the attachment fields upstream has
// historically used is populated.
func (s ProgressSubmission) HasDocument() bool {
	if s.Document != nil && (s.Document.Name != "" || len(s.Document.Content) > 0) {
		return true
	}
	return s.DocumentPath != ""
}

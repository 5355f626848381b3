package appraisal

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// TaskRepository is the read/write contract of the remote PMS task store.
// The HTTP client in platform/pmsclient implements it; tests substitute
// fakes.
type TaskRepository interface {
	ListTasksForEmployee(ctx context.Context, employeeID string) ([]Task, error)
	ListSubmissions(ctx context.Context, taskID string) ([]ProgressSubmission, error)
	WriteSubmission(ctx context.Context, payload Payload) (ProgressSubmission, error)
}

// ValidationError carries field-level messages from a server-side rejection,
// so callers can show them next to the offending inputs instead of a generic
// failure.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "submission rejected by server"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, field+": "+message)
	}
	sort.Strings(parts)
	return "submission rejected: " + strings.Join(parts, "; ")
}

// RepositoryError is a transport or non-validation server failure.
type RepositoryError struct {
	Status  int
	Message string
}

func (e *RepositoryError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("task repository error (status %d): %s", e.Status, e.Message)
	}
	return "task repository error: " + e.Message
}

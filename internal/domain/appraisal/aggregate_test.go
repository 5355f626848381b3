package appraisal

import (
	"testing"
	"time"
)

func submissionAt(taskID string, createdAt time.Time) ProgressSubmission {
	return ProgressSubmission{TaskID: taskID, CreatedAt: createdAt}
}

func TestLatestSubmissionOrdering(t *testing.T) {
	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Tasks: []Task{{ID: "t1"}},
		Submissions: map[string][]ProgressSubmission{
			"t1": {
				submissionAt("t1", base),
				submissionAt("t1", base.Add(48*time.Hour)),
				submissionAt("t1", base.Add(24*time.Hour)),
			},
		},
	}

	latest, ok := snap.LatestSubmission("t1")
	if !ok {
		t.Fatal("expected a latest submission")
	}
	if !latest.CreatedAt.Equal(base.Add(48 * time.Hour)) {
		t.Fatalf("expected newest submission first, got %v", latest.CreatedAt)
	}

	history := snap.SubmissionHistory("t1")
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.After(history[i-1].CreatedAt) {
			t.Fatalf("history not sorted newest-first at index %d", i)
		}
	}

	if _, ok := snap.LatestSubmission("missing"); ok {
		t.Fatal("expected no latest submission for unknown task")
	}
}

func TestCompletedCountEitherConditionOnce(t *testing.T) {
	now := time.Now()
	snap := Snapshot{
		Tasks: []Task{
			{ID: "pending-with-sub", Completion: CompletionPending},
			{ID: "completed-no-sub", Completion: CompletionCompleted},
			{ID: "completed-with-sub", Completion: CompletionCompleted},
			{ID: "untouched", Completion: CompletionInProgress},
		},
		Submissions: map[string][]ProgressSubmission{
			"pending-with-sub":   {submissionAt("pending-with-sub", now)},
			"completed-with-sub": {submissionAt("completed-with-sub", now)},
		},
	}

	// A submission marks a task completed regardless of its upstream status,
	// and satisfying both conditions counts once.
	if got := snap.CompletedCount(); got != 3 {
		t.Fatalf("expected completed count 3, got %d", got)
	}
}

func TestNeedAttentionCount(t *testing.T) {
	snap := Snapshot{
		Tasks: []Task{
			{ID: "t1", Completion: CompletionInProgress},
			{ID: "t2", Completion: CompletionCompleted},
		},
		Submissions: map[string][]ProgressSubmission{},
	}
	if got := snap.NeedAttentionCount(); got != 1 {
		t.Fatalf("expected 1 task needing attention, got %d", got)
	}

	// The first submission clears the flag.
	snap.Submissions["t1"] = []ProgressSubmission{submissionAt("t1", time.Now())}
	if got := snap.NeedAttentionCount(); got != 0 {
		t.Fatalf("expected 0 after first submission, got %d", got)
	}
}

func TestDocumentsSubmittedCountChecksAllFieldShapes(t *testing.T) {
	now := time.Now()
	snap := Snapshot{
		Tasks: []Task{{ID: "t1"}, {ID: "t2"}},
		Submissions: map[string][]ProgressSubmission{
			"t1": {
				{TaskID: "t1", CreatedAt: now, Document: &Document{Name: "report.pdf"}},
				{TaskID: "t1", CreatedAt: now, DocumentPath: "/files/old-shape.pdf"},
				{TaskID: "t1", CreatedAt: now},
			},
			"t2": {
				{TaskID: "t2", CreatedAt: now, Document: &Document{Content: []byte{1, 2, 3}}},
				{TaskID: "t2", CreatedAt: now, Document: &Document{}},
			},
		},
	}
	if got := snap.DocumentsSubmittedCount(); got != 3 {
		t.Fatalf("expected 3 documents across all shapes, got %d", got)
	}
}

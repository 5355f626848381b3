package appraisal

import "sort"

// Snapshot is one consistent read of an employee's tasks and the submission
// history fetched per task. All aggregate functions below are pure over it.
type Snapshot struct {
	Tasks       []Task
	Submissions map[string][]ProgressSubmission
}

// sortedSubmissions returns the task's submissions newest-first without
// mutating the snapshot.
func (s Snapshot) sortedSubmissions(taskID string) []ProgressSubmission {
	subs := s.Submissions[taskID]
	if len(subs) == 0 {
		return nil
	}
	out := make([]ProgressSubmission, len(subs))
	copy(out, subs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// LatestSubmission returns the most recent submission for the task, if any.
func (s Snapshot) LatestSubmission(taskID string) (ProgressSubmission, bool) {
	subs := s.sortedSubmissions(taskID)
	if len(subs) == 0 {
		return ProgressSubmission{}, false
	}
	return subs[0], true
}

// SubmissionHistory returns the task's full submission list, newest first.
func (s Snapshot) SubmissionHistory(taskID string) []ProgressSubmission {
	return s.sortedSubmissions(taskID)
}

// CompletedCount counts tasks that either carry the completed status upstream
// or have at least one submission. A task satisfying both counts once. The
// any-submission rule is a recorded product decision: contributing progress
// at all marks the task completed for dashboard purposes.
func (s Snapshot) CompletedCount() int {
	count := 0
	for _, task := range s.Tasks {
		if task.Completion == CompletionCompleted || len(s.Submissions[task.ID]) > 0 {
			count++
		}
	}
	return count
}

// NeedAttentionCount counts tasks with no submissions that upstream has not
// already marked completed.
func (s Snapshot) NeedAttentionCount() int {
	count := 0
	for _, task := range s.Tasks {
		if task.Completion != CompletionCompleted && len(s.Submissions[task.ID]) == 0 {
			count++
		}
	}
	return count
}

// DocumentsSubmittedCount totals attached documents across every submission
// of every task. Attachment presence is checked across all the field shapes
// upstream has used.
func (s Snapshot) DocumentsSubmittedCount() int {
	count := 0
	for _, task := range s.Tasks {
		for _, sub := range s.Submissions[task.ID] {
			if sub.HasDocument() {
				count++
			}
		}
	}
	return count
}

package appraisal

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Service orchestrates the employee dashboard and the progress-submission
// lifecycle over a TaskRepository. The employee identity is always an
// explicit parameter; nothing in here reads ambient state.
type Service struct {
	repo     TaskRepository
	table    MetricTable
	pageSize int
	now      func() time.Time
}

func NewService(repo TaskRepository, table MetricTable) *Service {
	return &Service{
		repo:     repo,
		table:    table,
		pageSize: DashboardPageSize,
		now:      time.Now,
	}
}

type Stats struct {
	TotalTasks         int `json:"totalTasks"`
	Completed          int `json:"completed"`
	NeedAttention      int `json:"needAttention"`
	DocumentsSubmitted int `json:"documentsSubmitted"`
}

type TaskRow struct {
	Task            Task                `json:"task"`
	Timeline        Timeline            `json:"timeline"`
	Remaining       string              `json:"remaining"`
	PastDue         bool                `json:"pastDue"`
	SubmissionCount int                 `json:"submissionCount"`
	Latest          *ProgressSubmission `json:"latestSubmission,omitempty"`
}

type Dashboard struct {
	Stats     Stats     `json:"stats"`
	Rows      []TaskRow `json:"rows"`
	Page      int       `json:"page"`
	PageCount int       `json:"pageCount"`
}

type TaskDetail struct {
	Task     Task                 `json:"task"`
	Timeline Timeline             `json:"timeline"`
	PastDue  bool                 `json:"pastDue"`
	History  []ProgressSubmission `json:"history"`
}

// snapshot fetches the employee's tasks and then every task's submission
// history. The per-task fetches run concurrently; a failed one degrades that
// task to an empty history and is logged, never retried, and never aborts
// the rest. A failed task-list fetch is fatal.
func (s *Service) snapshot(ctx context.Context, employeeID string) (Snapshot, error) {
	tasks, err := s.repo.ListTasksForEmployee(ctx, employeeID)
	if err != nil {
		return Snapshot{}, err
	}

	submissions := make(map[string][]ProgressSubmission, len(tasks))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(taskID string) {
			defer wg.Done()
			subs, err := s.repo.ListSubmissions(ctx, taskID)
			if err != nil {
				slog.Warn("submission fetch failed, treating as empty", "taskId", taskID, "err", err)
				return
			}
			mu.Lock()
			submissions[taskID] = subs
			mu.Unlock()
		}(task.ID)
	}
	wg.Wait()

	return Snapshot{Tasks: tasks, Submissions: submissions}, nil
}

// Dashboard builds the aggregate counters and the sorted, paginated task
// list for one employee. Pages are 1-based; out-of-range pages clamp.
func (s *Service) Dashboard(ctx context.Context, employeeID string, page int) (Dashboard, error) {
	snap, err := s.snapshot(ctx, employeeID)
	if err != nil {
		return Dashboard{}, err
	}

	now := s.now()
	sorted := sortByRecency(snap.Tasks)

	pageCount := (len(sorted) + s.pageSize - 1) / s.pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}
	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	rows := make([]TaskRow, 0, end-start)
	for _, task := range sorted[start:end] {
		row := TaskRow{
			Task:            task,
			Timeline:        ElapsedTimeline(task.StartDate, task.EndDate, now),
			Remaining:       RemainingLabel(task.EndDate, now),
			PastDue:         TaskPastDue(task, now),
			SubmissionCount: len(snap.Submissions[task.ID]),
		}
		if latest, ok := snap.LatestSubmission(task.ID); ok {
			row.Latest = &latest
		}
		rows = append(rows, row)
	}

	return Dashboard{
		Stats: Stats{
			TotalTasks:         len(snap.Tasks),
			Completed:          snap.CompletedCount(),
			NeedAttention:      snap.NeedAttentionCount(),
			DocumentsSubmitted: snap.DocumentsSubmittedCount(),
		},
		Rows:      rows,
		Page:      page,
		PageCount: pageCount,
	}, nil
}

// TaskDetail returns one task with its timeline and full submission history,
// newest first.
func (s *Service) TaskDetail(ctx context.Context, employeeID, taskID string) (TaskDetail, error) {
	tasks, err := s.repo.ListTasksForEmployee(ctx, employeeID)
	if err != nil {
		return TaskDetail{}, err
	}
	task, ok := findTask(tasks, taskID)
	if !ok {
		return TaskDetail{}, ErrTaskNotFound
	}

	history, err := s.repo.ListSubmissions(ctx, taskID)
	if err != nil {
		slog.Warn("submission fetch failed, treating as empty", "taskId", taskID, "err", err)
		history = nil
	}
	snap := Snapshot{Tasks: tasks, Submissions: map[string][]ProgressSubmission{taskID: history}}

	now := s.now()
	return TaskDetail{
		Task:     task,
		Timeline: ElapsedTimeline(task.StartDate, task.EndDate, now),
		PastDue:  TaskPastDue(task, now),
		History:  snap.SubmissionHistory(taskID),
	}, nil
}

// SubmitProgress runs the full write path: locate the task, validate the
// draft against it, resolve the employee code to its numeric id, build the
// wire payload, and write it. Any failure leaves no partial state; the
// caller keeps the draft for correction.
func (s *Service) SubmitProgress(ctx context.Context, employeeID, taskID string, draft Draft) (ProgressSubmission, error) {
	tasks, err := s.repo.ListTasksForEmployee(ctx, employeeID)
	if err != nil {
		return ProgressSubmission{}, err
	}
	task, ok := findTask(tasks, taskID)
	if !ok {
		return ProgressSubmission{}, ErrTaskNotFound
	}

	// The task, not the caller, decides the submission mode.
	draft.Kind = task.Kind

	if err := ValidateDraft(draft, task, s.now()); err != nil {
		return ProgressSubmission{}, err
	}

	numericID, err := ResolveEmployeeID(employeeID)
	if err != nil {
		return ProgressSubmission{}, err
	}

	payload := BuildPayload(draft, task, numericID, s.table)
	return s.repo.WriteSubmission(ctx, payload)
}

// ResolveEmployeeID normalizes an employee identifier to the numeric
// database id the write API requires. Prefixed codes such as "EMP-0042"
// reduce to their digits; anything that yields no digits, or more digits
// than an int holds, is a hard error.
func ResolveEmployeeID(code string) (int, error) {
	var digits strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, ErrEmployeeIDInvalid
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, ErrEmployeeIDInvalid
	}
	return id, nil
}

func findTask(tasks []Task, taskID string) (Task, bool) {
	for _, task := range tasks {
		if task.ID == taskID {
			return task, true
		}
	}
	return Task{}, false
}

// recencyKey picks the most recent parseable of the task's date fields.
// Tasks carrying none of them sort to the end of the list.
func recencyKey(task Task) (time.Time, bool) {
	var best time.Time
	found := false
	for _, raw := range []string{task.CreatedAt, task.LastUpdated, task.StartDate, task.EndDate} {
		if raw == "" {
			continue
		}
		parsed, err := parseInstant(raw)
		if err != nil {
			continue
		}
		if !found || parsed.After(best) {
			best = parsed
			found = true
		}
	}
	return best, found
}

func sortByRecency(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, iOK := recencyKey(sorted[i])
		kj, jOK := recencyKey(sorted[j])
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ki.After(kj)
	})
	return sorted
}

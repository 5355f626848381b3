package appraisal

// BuildPayload converts an accepted draft into the wire payload. It assumes
// ValidateDraft has passed; employeeID must already be resolved to the
// numeric database id.
//
// For appraisal tasks the percentage is derived from the rating, never
// supplied independently. For regular tasks the rating is omitted entirely
// rather than sent as zero.
func BuildPayload(draft Draft, task Task, employeeID int, table MetricTable) Payload {
	percent := 0
	var rating *int
	if draft.Kind == KindAppraisal {
		r := *draft.Rating
		rating = &r
		percent = r * RatingPercentStep
	} else if draft.Percent != nil {
		percent = *draft.Percent
	}

	return Payload{
		TaskID:          task.ID,
		EmployeeID:      employeeID,
		Note:            draft.Note,
		ProgressPercent: percent,
		Rating:          rating,
		Metrics:         buildMetricMap(task.Name, percent, table),
		Document:        draft.Document,
	}
}

// buildMetricMap produces the sparse-but-complete metric map the backend
// expects: every known key present and zeroed, the matched key carrying the
// real value, plus the task's own display name as a redundant key with the
// same value. The backend rejects submissions with missing keys, so the
// zero-fill is load-bearing; a sparse map is the eventual server-side fix.
func buildMetricMap(taskName string, percent int, table MetricTable) map[string]int {
	metrics := make(map[string]int, len(table.keys)+1)
	for _, key := range table.Keys() {
		metrics[key] = 0
	}
	metrics[table.KeyFor(taskName)] = percent
	if taskName != "" {
		metrics[taskName] = percent
	}
	return metrics
}

package appraisal

import "strings"

// GeneralMetricKey receives the computed percentage when a task matches no
// configured metric.
const GeneralMetricKey = "generalPerformance"

// MetricTable maps task names to backend metric keys. The backend expects
// every known key on every submission, so the table also defines the full
// key set that gets zero-filled.
type MetricTable struct {
	byName map[string]string
	keys   []string
}

// NewMetricTable builds a table from a task-name to metric-key mapping. The
// general fallback key is always part of the key set.
func NewMetricTable(nameToKey map[string]string) MetricTable {
	table := MetricTable{byName: make(map[string]string, len(nameToKey))}
	seen := map[string]bool{}
	for name, key := range nameToKey {
		table.byName[strings.ToLower(strings.TrimSpace(name))] = key
		if !seen[key] {
			seen[key] = true
			table.keys = append(table.keys, key)
		}
	}
	if !seen[GeneralMetricKey] {
		table.keys = append(table.keys, GeneralMetricKey)
	}
	return table
}

// DefaultMetricTable covers the KPI categories the backend tracks today.
func DefaultMetricTable() MetricTable {
	return NewMetricTable(map[string]string{
		"sales target":          "salesTarget",
		"customer satisfaction": "customerSatisfaction",
		"revenue growth":        "revenueGrowth",
		"cost reduction":        "costReduction",
		"attendance":            "attendance",
		"quality of work":       "qualityOfWork",
		"team collaboration":    "teamCollaboration",
		"performance appraisal": "generalPerformance",
	})
}

// KeyFor resolves the metric key for a task name: exact match first, then
// substring in either direction, then the general fallback. Resolution never
// fails; an unrecognized task lands on the fallback key.
func (t MetricTable) KeyFor(taskName string) string {
	name := strings.ToLower(strings.TrimSpace(taskName))
	if name == "" {
		return GeneralMetricKey
	}
	if key, ok := t.byName[name]; ok {
		return key
	}
	for candidate, key := range t.byName {
		if strings.Contains(name, candidate) || strings.Contains(candidate, name) {
			return key
		}
	}
	return GeneralMetricKey
}

// Keys returns the complete known key set.
func (t MetricTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

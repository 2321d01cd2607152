package task

import (
	"slices"

	"cloud.google.com/go/civil"
)

// Filter selects tasks from a snapshot. Zero-valued fields match everything.
type Filter struct {
	Completed *bool
	Priority  *Priority
	From      *civil.Date // due on or after
}

// Match reports whether t passes every set criterion.
func (f Filter) Match(t Task) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.From != nil && t.Due.Before(*f.From) {
		return false
	}
	return true
}

// Apply returns the matching tasks in their original order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByCompletion returns the tasks whose completion flag equals completed.
func ByCompletion(tasks []Task, completed bool) []Task {
	return Filter{Completed: &completed}.Apply(tasks)
}

// ByPriority returns the tasks with priority p.
func ByPriority(tasks []Task, p Priority) []Task {
	return Filter{Priority: &p}.Apply(tasks)
}

// OnOrAfter returns the tasks due on or after from.
func OnOrAfter(tasks []Task, from civil.Date) []Task {
	return Filter{From: &from}.Apply(tasks)
}

// SortByPriority returns a copy sorted by priority, keeping insertion order
// among equal priorities.
func SortByPriority(tasks []Task) []Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, Task.Compare)
	return out
}

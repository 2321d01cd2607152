// Package task defines the task model and the in-memory task store.
package task

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// ErrNotFound is matched by errors reporting a task id that is not in the store.
var ErrNotFound = errors.New("task not found")

// NotFoundError carries the id that could not be found.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Priority determines task urgency. Lower ordinals are more urgent.
type Priority int

const (
	PriorityRed Priority = iota
	PriorityYellow
	PriorityGreen
)

// Priorities lists every priority in ordinal order.
var Priorities = []Priority{PriorityRed, PriorityYellow, PriorityGreen}

var priorityNames = [...]string{"RED", "YELLOW", "GREEN"}

func (p Priority) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// Valid reports whether p is one of the declared priorities.
func (p Priority) Valid() bool {
	return p >= PriorityRed && p <= PriorityGreen
}

// ParsePriority parses a priority name, case-insensitive and trimmed.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range priorityNames {
		if n == name {
			return Priority(i), nil
		}
	}
	return 0, fmt.Errorf("invalid priority: %q (want RED, YELLOW or GREEN)", s)
}

// Task is a unit of work.
type Task struct {
	ID          int
	Description string
	Due         civil.Date
	Completed   bool
	Priority    Priority
}

// Equal compares everything except the id.
func (t Task) Equal(o Task) bool {
	return t.Description == o.Description &&
		t.Due == o.Due &&
		t.Completed == o.Completed &&
		t.Priority == o.Priority
}

// Compare orders tasks by priority ordinal.
func (t Task) Compare(o Task) int {
	switch {
	case t.Priority < o.Priority:
		return -1
	case t.Priority > o.Priority:
		return 1
	default:
		return 0
	}
}

func (t Task) String() string {
	return fmt.Sprintf("#%d %s (due %s, %s, completed=%t)", t.ID, t.Description, t.Due, t.Priority, t.Completed)
}

// IDAllocator mints task ids. The zero value starts at 1.
type IDAllocator struct {
	last int
}

// Next returns the next unused id.
func (a *IDAllocator) Next() int {
	a.last++
	return a.last
}

// Package service exposes the task operations used by the presentation layer.
//
// A single Service implementation serves every front end; what differs between
// front ends is how outcomes are reported, which is the Reporter's job.
package service

import (
	"context"

	"cloud.google.com/go/civil"

	"tasklist/internal/task"
)

// Service defines the task operations.
// Operations on a missing id leave the store untouched, call
// Reporter.NotFound and return an error matching task.ErrNotFound.
type Service interface {
	// Add creates an open task and returns it with its new id.
	Add(description string, due civil.Date, priority task.Priority) task.Task

	// Get returns the task with the given id.
	Get(id int) (task.Task, error)

	// Remove deletes a task.
	Remove(id int) error

	// Complete marks a task completed. Idempotent.
	Complete(id int) error

	// Toggle flips completion and returns the new state.
	Toggle(id int) (bool, error)

	// ChangeDate overwrites the due date.
	ChangeDate(id int, due civil.Date) error

	// Edit overwrites description, due date and priority.
	Edit(id int, description string, due civil.Date, priority task.Priority) error

	// All returns every task in insertion order.
	All() []task.Task

	// Query returns the tasks matching f in insertion order.
	Query(f task.Filter) []task.Task

	ByCompletion(completed bool) []task.Task
	ByPriority(priority task.Priority) []task.Task
	OnOrAfter(from civil.Date) []task.Task

	// Len returns the number of tasks.
	Len() int

	// Save writes every task to path.
	Save(path string) error

	// Load appends the tasks stored at path. With strict, nothing is appended
	// unless every line parses.
	Load(path string, strict bool) (int, error)

	// Commit writes the store back to its backing file.
	Commit() error

	// Publish pushes a snapshot to a remote task list.
	Publish(ctx context.Context, remote Remote, listName string) (PublishResult, error)
}

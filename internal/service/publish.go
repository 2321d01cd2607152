package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tasklist/internal/task"
)

var (
	// ErrListNotFound is returned by Remote.ResolveList when no list has the name.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned by Remote.ResolveList when several lists share the name.
	ErrAmbiguousList = errors.New("ambiguous list name")

	// ErrUnauthorized is returned by a Remote whose credentials were rejected.
	ErrUnauthorized = errors.New("unauthorized")
)

// Remote is a task list hosted outside the local file.
// Commands never import a remote SDK directly.
type Remote interface {
	// ResolveList finds a list by name (case-insensitive, trimmed).
	ResolveList(ctx context.Context, name string) (RemoteList, error)

	// CreateList creates a new list.
	CreateList(ctx context.Context, name string) (RemoteList, error)

	// ListTitles returns the titles of every task in the list, completed included.
	ListTitles(ctx context.Context, listID string) ([]string, error)

	// CreateTask inserts a task into the list.
	CreateTask(ctx context.Context, listID string, t RemoteTask) error
}

// ToRemote converts a local task. The due date becomes midnight UTC and the
// priority goes into the notes.
func ToRemote(t task.Task) RemoteTask {
	return RemoteTask{
		Title:     t.Description,
		Notes:     "priority: " + t.Priority.String(),
		Due:       t.Due.In(time.UTC),
		Completed: t.Completed,
	}
}

// Publish pushes tasks to the named remote list, creating the list if needed.
// Tasks whose title is already present in the list are skipped, and a title
// is sent at most once per run. Nothing is ever read back into the local store.
func Publish(ctx context.Context, remote Remote, listName string, tasks []task.Task) (PublishResult, error) {
	var res PublishResult

	list, err := remote.ResolveList(ctx, listName)
	if errors.Is(err, ErrListNotFound) {
		list, err = remote.CreateList(ctx, listName)
		res.ListCreated = err == nil
	}
	if err != nil {
		return res, fmt.Errorf("list %q: %w", listName, err)
	}
	res.List = list

	existing := make(map[string]bool)
	sent := make(map[string]bool)
	if !res.ListCreated {
		titles, err := remote.ListTitles(ctx, list.ID)
		if err != nil {
			return res, fmt.Errorf("list %q: %w", listName, err)
		}
		for _, title := range titles {
			existing[title] = true
		}
	}

	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rt := ToRemote(t)
		switch {
		case existing[rt.Title]:
			res.Skipped++
			continue
		case sent[rt.Title]:
			res.Duplicates++
			continue
		}
		if err := remote.CreateTask(ctx, list.ID, rt); err != nil {
			return res, fmt.Errorf("task %d: %w", t.ID, err)
		}
		sent[rt.Title] = true
		res.Created++
	}
	return res, nil
}

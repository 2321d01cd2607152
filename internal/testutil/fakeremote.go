// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tasklist/internal/service"
)

// FakeRemote is an in-memory implementation of service.Remote for testing.
type FakeRemote struct {
	mu      sync.Mutex
	lists   []service.RemoteList
	tasks   map[string][]service.RemoteTask // listID -> tasks
	nextID  int
	created int

	// Error injection for testing
	ResolveListErr error
	CreateListErr  error
	ListTitlesErr  error
	CreateTaskErr  error

	// FailAfter makes CreateTask fail once this many tasks were created. Zero disables it.
	FailAfter int
}

// NewFakeRemote creates an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{tasks: make(map[string][]service.RemoteTask)}
}

// AddList adds a list and returns its id.
func (f *FakeRemote) AddList(title string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addListLocked(title).ID
}

func (f *FakeRemote) addListLocked(title string) service.RemoteList {
	f.nextID++
	l := service.RemoteList{ID: fmt.Sprintf("list-%d", f.nextID), Title: title}
	f.lists = append(f.lists, l)
	f.tasks[l.ID] = nil
	return l
}

// AddTask seeds a task into a list.
func (f *FakeRemote) AddTask(listID, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], service.RemoteTask{Title: title})
}

// Tasks returns a copy of the tasks in a list.
func (f *FakeRemote) Tasks(listID string) []service.RemoteTask {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.RemoteTask(nil), f.tasks[listID]...)
}

// Lists returns a copy of every list.
func (f *FakeRemote) Lists() []service.RemoteList {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.RemoteList(nil), f.lists...)
}

// ResolveList implements service.Remote.
func (f *FakeRemote) ResolveList(ctx context.Context, name string) (service.RemoteList, error) {
	if f.ResolveListErr != nil {
		return service.RemoteList{}, f.ResolveListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	want := strings.ToLower(strings.TrimSpace(name))
	var matches []service.RemoteList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.RemoteList{}, service.ErrListNotFound
	case 1:
		return matches[0], nil
	default:
		return service.RemoteList{}, service.ErrAmbiguousList
	}
}

// CreateList implements service.Remote.
func (f *FakeRemote) CreateList(ctx context.Context, name string) (service.RemoteList, error) {
	if f.CreateListErr != nil {
		return service.RemoteList{}, f.CreateListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addListLocked(name), nil
}

// ListTitles implements service.Remote.
func (f *FakeRemote) ListTitles(ctx context.Context, listID string) ([]string, error) {
	if f.ListTitlesErr != nil {
		return nil, f.ListTitlesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, service.ErrListNotFound
	}
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return titles, nil
}

// CreateTask implements service.Remote.
func (f *FakeRemote) CreateTask(ctx context.Context, listID string, t service.RemoteTask) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[listID]; !ok {
		return service.ErrListNotFound
	}
	if f.FailAfter > 0 && f.created >= f.FailAfter {
		return fmt.Errorf("quota exceeded")
	}
	f.tasks[listID] = append(f.tasks[listID], t)
	f.created++
	return nil
}

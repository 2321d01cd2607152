package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"tasklist/internal/csvstore"
	"tasklist/internal/task"
)

// ErrNoBackingFile is returned by Commit on a store opened without a file.
var ErrNoBackingFile = errors.New("no backing file")

var _ Service = (*Local)(nil)

// Local implements Service over an in-memory task.Store, optionally backed by
// a CSV file.
type Local struct {
	store *task.Store
	path  string
	rep   Reporter
	log   *zerolog.Logger
}

// NewLocal creates an empty, unbacked service.
func NewLocal(rep Reporter, log *zerolog.Logger) *Local {
	if rep == nil {
		rep = Discard
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Local{store: task.NewStore(), rep: rep, log: log}
}

// Open creates a service backed by the CSV file at path and loads it.
// A missing file yields an empty store. When some lines fail to parse the
// service is still returned, holding the lines that did parse, together with
// the load error.
func Open(path string, rep Reporter, log *zerolog.Logger) (*Local, error) {
	l := NewLocal(rep, log)
	l.path = path

	_, err := csvstore.Load(path, l.store, l.codecOptions(false))
	if errors.Is(err, fs.ErrNotExist) {
		l.log.Debug().Str("path", path).Msg("tasks file does not exist yet")
		return l, nil
	}
	return l, err
}

// Path returns the backing file, empty for an unbacked service.
func (l *Local) Path() string { return l.path }

func (l *Local) codecOptions(strict bool) csvstore.Options {
	return csvstore.Options{Strict: strict, Log: l.log}
}

func (l *Local) notFound(op string, id int) error {
	l.rep.NotFound(op, id)
	return &task.NotFoundError{ID: id}
}

func (l *Local) Add(description string, due civil.Date, priority task.Priority) task.Task {
	t := l.store.Add(description, due, priority)
	l.rep.Success(fmt.Sprintf("added %d: %s", t.ID, t.Description))
	return t
}

func (l *Local) Get(id int) (task.Task, error) {
	t, ok := l.store.Get(id)
	if !ok {
		return task.Task{}, l.notFound("get", id)
	}
	return t, nil
}

func (l *Local) Remove(id int) error {
	if !l.store.Remove(id) {
		return l.notFound("remove", id)
	}
	l.rep.Success(fmt.Sprintf("removed %d", id))
	return nil
}

func (l *Local) Complete(id int) error {
	if !l.store.MarkCompleted(id) {
		return l.notFound("complete", id)
	}
	l.rep.Success(fmt.Sprintf("completed %d", id))
	return nil
}

func (l *Local) Toggle(id int) (bool, error) {
	done, ok := l.store.ToggleCompleted(id)
	if !ok {
		return false, l.notFound("toggle", id)
	}
	if done {
		l.rep.Success(fmt.Sprintf("completed %d", id))
	} else {
		l.rep.Success(fmt.Sprintf("reopened %d", id))
	}
	return done, nil
}

func (l *Local) ChangeDate(id int, due civil.Date) error {
	if !l.store.ChangeDate(id, due) {
		return l.notFound("change date", id)
	}
	l.rep.Success(fmt.Sprintf("moved %d to %s", id, due))
	return nil
}

func (l *Local) Edit(id int, description string, due civil.Date, priority task.Priority) error {
	ok := l.store.Update(id, func(t *task.Task) {
		t.Description = description
		t.Due = due
		t.Priority = priority
	})
	if !ok {
		return l.notFound("edit", id)
	}
	l.rep.Success(fmt.Sprintf("updated %d", id))
	return nil
}

func (l *Local) All() []task.Task { return l.store.All() }

func (l *Local) Query(f task.Filter) []task.Task { return f.Apply(l.store.All()) }

func (l *Local) ByCompletion(completed bool) []task.Task {
	return task.ByCompletion(l.store.All(), completed)
}

func (l *Local) ByPriority(priority task.Priority) []task.Task {
	return task.ByPriority(l.store.All(), priority)
}

func (l *Local) OnOrAfter(from civil.Date) []task.Task {
	return task.OnOrAfter(l.store.All(), from)
}

func (l *Local) Len() int { return l.store.Len() }

func (l *Local) Save(path string) error {
	tasks := l.store.All()
	if err := csvstore.Save(path, tasks, l.codecOptions(false)); err != nil {
		l.rep.Failure("save", err)
		return err
	}
	l.rep.Success(fmt.Sprintf("saved %d tasks to %s", len(tasks), path))
	return nil
}

func (l *Local) Load(path string, strict bool) (int, error) {
	n, err := csvstore.Load(path, l.store, l.codecOptions(strict))
	if err != nil {
		l.rep.Failure("load", err)
		return n, err
	}
	l.rep.Success(fmt.Sprintf("loaded %d tasks from %s", n, path))
	return n, nil
}

func (l *Local) Commit() error {
	if l.path == "" {
		return ErrNoBackingFile
	}
	if err := csvstore.Save(l.path, l.store.All(), l.codecOptions(false)); err != nil {
		l.rep.Failure("commit", err)
		return err
	}
	return nil
}

func (l *Local) Publish(ctx context.Context, remote Remote, listName string) (PublishResult, error) {
	res, err := Publish(ctx, remote, listName, l.store.All())
	if err != nil {
		l.rep.Failure("publish", err)
		return res, err
	}
	msg := fmt.Sprintf("published %d tasks to %q (%d already there", res.Created, res.List.Title, res.Skipped)
	if res.Duplicates > 0 {
		msg += fmt.Sprintf(", %d duplicate descriptions", res.Duplicates)
	}
	l.rep.Success(msg + ")")
	return res, nil
}

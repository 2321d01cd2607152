package task

import "cloud.google.com/go/civil"

type node struct {
	task Task
	next *node
}

// Store is an ordered collection of tasks kept in append order.
// It is a singly linked list with a tail pointer; every traversal is iterative.
// Store is not safe for concurrent use.
type Store struct {
	head *node
	tail *node
	size int
	ids  IDAllocator
}

// NewStore returns an empty store with its own id sequence.
func NewStore() *Store {
	return &Store{}
}

// Add creates an open task and appends it.
func (s *Store) Add(description string, due civil.Date, priority Priority) Task {
	return s.Append(Task{
		Description: description,
		Due:         due,
		Priority:    priority,
	})
}

// Append appends a copy of t under a freshly minted id. Any id already set on t
// is discarded.
func (s *Store) Append(t Task) Task {
	t.ID = s.ids.Next()
	n := &node{task: t}
	if s.tail == nil {
		s.head = n
	} else {
		s.tail.next = n
	}
	s.tail = n
	s.size++
	return t
}

// Len returns the number of tasks.
func (s *Store) Len() int { return s.size }

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	n := s.find(id)
	if n == nil {
		return Task{}, false
	}
	return n.task, true
}

// Remove splices out the task with the given id. It reports whether a task was removed.
func (s *Store) Remove(id int) bool {
	var prev *node
	for cur := s.head; cur != nil; prev, cur = cur, cur.next {
		if cur.task.ID != id {
			continue
		}
		if prev == nil {
			s.head = cur.next
		} else {
			prev.next = cur.next
		}
		if s.tail == cur {
			s.tail = prev
		}
		s.size--
		return true
	}
	return false
}

// MarkCompleted sets the task's completion flag. Calling it twice is harmless.
func (s *Store) MarkCompleted(id int) bool {
	return s.Update(id, func(t *Task) { t.Completed = true })
}

// ToggleCompleted flips the completion flag and returns the new value.
func (s *Store) ToggleCompleted(id int) (completed, ok bool) {
	ok = s.Update(id, func(t *Task) {
		t.Completed = !t.Completed
		completed = t.Completed
	})
	return completed, ok
}

// ChangeDate overwrites the due date.
func (s *Store) ChangeDate(id int, due civil.Date) bool {
	return s.Update(id, func(t *Task) { t.Due = due })
}

// Update applies fn to the stored task in place. fn must not change the id.
func (s *Store) Update(id int, fn func(*Task)) bool {
	n := s.find(id)
	if n == nil {
		return false
	}
	fn(&n.task)
	n.task.ID = id
	return true
}

// All returns a snapshot of every task in insertion order.
func (s *Store) All() []Task {
	out := make([]Task, 0, s.size)
	for cur := s.head; cur != nil; cur = cur.next {
		out = append(out, cur.task)
	}
	return out
}

func (s *Store) find(id int) *node {
	for cur := s.head; cur != nil; cur = cur.next {
		if cur.task.ID == id {
			return cur
		}
	}
	return nil
}

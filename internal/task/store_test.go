package task_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"tasklist/internal/task"
)

func date(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func TestStore_AddKeepsOrder(t *testing.T) {
	s := task.NewStore()
	names := []string{"one", "two", "three", "four"}
	for _, n := range names {
		s.Add(n, date(2025, 1, 1), task.PriorityGreen)
	}

	all := s.All()
	if len(all) != len(names) {
		t.Fatalf("expected %d tasks, got %d", len(names), len(all))
	}
	for i, n := range names {
		if all[i].Description != n {
			t.Errorf("position %d: expected %q, got %q", i, n, all[i].Description)
		}
		if all[i].ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, all[i].ID)
		}
		if all[i].Completed {
			t.Errorf("position %d: new task should not be completed", i)
		}
	}
}

func TestStore_IndependentIDSequences(t *testing.T) {
	a := task.NewStore()
	b := task.NewStore()
	a.Add("a1", date(2025, 1, 1), task.PriorityRed)
	a.Add("a2", date(2025, 1, 1), task.PriorityRed)
	got := b.Add("b1", date(2025, 1, 1), task.PriorityRed)

	if got.ID != 1 {
		t.Errorf("expected second store to start at id 1, got %d", got.ID)
	}
}

func TestStore_GetReturnsEqualTask(t *testing.T) {
	s := task.NewStore()
	added := s.Add("Buy milk", date(2025, 1, 1), task.PriorityRed)

	got, ok := s.Get(added.ID)
	if !ok {
		t.Fatal("expected task to be found")
	}
	if !got.Equal(added) || got.ID != added.ID {
		t.Errorf("expected %v, got %v", added, got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := task.NewStore()
	if _, ok := s.Get(42); ok {
		t.Error("expected missing id to report not found")
	}
}

func TestStore_Remove(t *testing.T) {
	tests := []struct {
		name   string
		remove int
		want   []string
	}{
		{"head", 1, []string{"b", "c"}},
		{"middle", 2, []string{"a", "c"}},
		{"tail", 3, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := task.NewStore()
			for _, n := range []string{"a", "b", "c"} {
				s.Add(n, date(2025, 1, 1), task.PriorityYellow)
			}

			if !s.Remove(tt.remove) {
				t.Fatalf("expected id %d to be removed", tt.remove)
			}
			if s.Len() != 2 {
				t.Errorf("expected size 2, got %d", s.Len())
			}
			if _, ok := s.Get(tt.remove); ok {
				t.Errorf("expected id %d to be gone", tt.remove)
			}

			all := s.All()
			for i, w := range tt.want {
				if all[i].Description != w {
					t.Errorf("position %d: expected %q, got %q", i, w, all[i].Description)
				}
			}

			// Appending after a removal must still link from the right tail.
			s.Add("d", date(2025, 1, 1), task.PriorityYellow)
			all = s.All()
			if last := all[len(all)-1]; last.Description != "d" || last.ID != 4 {
				t.Errorf("expected d with id 4 at the tail, got %v", last)
			}
		})
	}
}

func TestStore_RemoveOnlyElementThenAdd(t *testing.T) {
	s := task.NewStore()
	s.Add("only", date(2025, 1, 1), task.PriorityRed)
	s.Remove(1)
	s.Add("next", date(2025, 1, 1), task.PriorityRed)

	all := s.All()
	if len(all) != 1 || all[0].Description != "next" {
		t.Errorf("expected [next], got %v", all)
	}
}

func TestStore_RemoveMissingOnEmptyStore(t *testing.T) {
	s := task.NewStore()
	if s.Remove(999) {
		t.Error("expected remove on empty store to report not found")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}
}

func TestStore_MarkCompletedIdempotent(t *testing.T) {
	s := task.NewStore()
	added := s.Add("x", date(2025, 1, 1), task.PriorityRed)

	s.MarkCompleted(added.ID)
	once := s.All()
	s.MarkCompleted(added.ID)
	twice := s.All()

	if !once[0].Completed {
		t.Error("expected task to be completed")
	}
	if !once[0].Equal(twice[0]) {
		t.Errorf("expected same state, got %v then %v", once[0], twice[0])
	}
	if s.MarkCompleted(7) {
		t.Error("expected missing id to report not found")
	}
}

func TestStore_ToggleCompleted(t *testing.T) {
	s := task.NewStore()
	added := s.Add("x", date(2025, 1, 1), task.PriorityRed)

	done, ok := s.ToggleCompleted(added.ID)
	if !ok || !done {
		t.Errorf("expected (true, true), got (%t, %t)", done, ok)
	}
	done, ok = s.ToggleCompleted(added.ID)
	if !ok || done {
		t.Errorf("expected (false, true), got (%t, %t)", done, ok)
	}
	if _, ok := s.ToggleCompleted(99); ok {
		t.Error("expected missing id to report not found")
	}
}

func TestStore_ChangeDate(t *testing.T) {
	s := task.NewStore()
	added := s.Add("x", date(2025, 1, 1), task.PriorityRed)

	if !s.ChangeDate(added.ID, date(2026, 3, 4)) {
		t.Fatal("expected change to succeed")
	}
	got, _ := s.Get(added.ID)
	if got.Due != date(2026, 3, 4) {
		t.Errorf("expected 2026-03-04, got %s", got.Due)
	}
	if s.ChangeDate(5, date(2026, 3, 4)) {
		t.Error("expected missing id to report not found")
	}
}

func TestStore_UpdateCannotChangeID(t *testing.T) {
	s := task.NewStore()
	added := s.Add("x", date(2025, 1, 1), task.PriorityRed)

	s.Update(added.ID, func(tk *task.Task) {
		tk.ID = 100
		tk.Description = "y"
	})

	got, ok := s.Get(added.ID)
	if !ok || got.Description != "y" {
		t.Errorf("expected updated task under original id, got %v (found=%t)", got, ok)
	}
}

func TestStore_AllIsSnapshot(t *testing.T) {
	s := task.NewStore()
	s.Add("x", date(2025, 1, 1), task.PriorityRed)

	snap := s.All()
	snap[0].Description = "mutated"
	snap[0].Completed = true

	got, _ := s.Get(1)
	if got.Description != "x" || got.Completed {
		t.Errorf("snapshot mutation leaked into the store: %v", got)
	}
}

func TestStore_AppendDiscardsIncomingID(t *testing.T) {
	s := task.NewStore()
	got := s.Append(task.Task{ID: 77, Description: "x", Due: date(2025, 1, 1)})
	if got.ID != 1 {
		t.Errorf("expected id 1, got %d", got.ID)
	}
}

func TestStore_LongListDoesNotRecurse(t *testing.T) {
	s := task.NewStore()
	const n = 200000
	for i := 0; i < n; i++ {
		s.Add("t", date(2025, 1, 1), task.PriorityGreen)
	}
	if !s.Remove(n) {
		t.Fatal("expected last element to be removed")
	}
	if _, ok := s.Get(n - 1); !ok {
		t.Error("expected second-to-last element to be found")
	}
}

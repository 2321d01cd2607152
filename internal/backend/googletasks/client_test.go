package googletasks_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"tasklist/internal/backend/googletasks"
	"tasklist/internal/service"
)

// fakeAPI serves the subset of the Tasks REST API the client uses.
type fakeAPI struct {
	mu       sync.Mutex
	inserted []map[string]string
	lists    []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := r.URL.Path
	switch {
	case strings.HasSuffix(path, "/users/@me/lists") && r.Method == http.MethodGet:
		if r.URL.Query().Get("pageToken") == "" {
			writeJSON(w, map[string]any{
				"items":         []map[string]string{{"id": "l1", "title": "Work"}},
				"nextPageToken": "p2",
			})
			return
		}
		writeJSON(w, map[string]any{
			"items": []map[string]string{
				{"id": "l2", "title": "Chores"},
				{"id": "l3", "title": " chores "},
				{"id": "l4", "title": "Groceries"},
			},
		})

	case strings.HasSuffix(path, "/users/@me/lists") && r.Method == http.MethodPost:
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		f.lists = append(f.lists, body["title"])
		writeJSON(w, map[string]string{"id": "new", "title": body["title"]})

	case strings.HasSuffix(path, "/tasks"):
		listID := strings.TrimSuffix(path[strings.LastIndex(path, "/lists/")+len("/lists/"):], "/tasks")
		switch listID {
		case "denied":
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]any{"error": map[string]any{"code": 401, "message": "invalid credentials"}})
			return
		case "gone":
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]any{"error": map[string]any{"code": 404, "message": "not found"}})
			return
		}

		if r.Method == http.MethodPost {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			f.inserted = append(f.inserted, body)
			writeJSON(w, map[string]string{"id": "t1"})
			return
		}

		if r.URL.Query().Get("showCompleted") != "true" {
			http.Error(w, "expected showCompleted", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("pageToken") == "" {
			writeJSON(w, map[string]any{
				"items":         []map[string]string{{"id": "a", "title": "Buy milk"}},
				"nextPageToken": "next",
			})
			return
		}
		writeJSON(w, map[string]any{
			"items": []map[string]string{{"id": "b", "title": "Clean"}},
		})

	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func newClient(t *testing.T) (*googletasks.Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := googletasks.NewWithEndpoint(context.Background(), srv.Client(), srv.URL+"/")
	if err != nil {
		t.Fatalf("NewWithEndpoint: %v", err)
	}
	return c, api
}

func TestResolveList(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	list, err := c.ResolveList(ctx, "  work ")
	if err != nil {
		t.Fatalf("ResolveList: %v", err)
	}
	if list.ID != "l1" || list.Title != "Work" {
		t.Errorf("unexpected list %+v", list)
	}

	// Found on the second page.
	if list, err := c.ResolveList(ctx, "groceries"); err != nil || list.ID != "l4" {
		t.Errorf("expected l4, got %+v (err=%v)", list, err)
	}

	if _, err := c.ResolveList(ctx, "chores"); !errors.Is(err, service.ErrAmbiguousList) {
		t.Errorf("expected ErrAmbiguousList, got %v", err)
	}
	if _, err := c.ResolveList(ctx, "missing"); !errors.Is(err, service.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestCreateList(t *testing.T) {
	c, api := newClient(t)

	list, err := c.CreateList(context.Background(), "Publish")
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if list.ID != "new" || list.Title != "Publish" {
		t.Errorf("unexpected list %+v", list)
	}
	if len(api.lists) != 1 || api.lists[0] != "Publish" {
		t.Errorf("expected one created list, got %v", api.lists)
	}
}

func TestListTitles_FollowsPages(t *testing.T) {
	c, _ := newClient(t)

	titles, err := c.ListTitles(context.Background(), "l1")
	if err != nil {
		t.Fatalf("ListTitles: %v", err)
	}
	if len(titles) != 2 || titles[0] != "Buy milk" || titles[1] != "Clean" {
		t.Errorf("expected [Buy milk Clean], got %v", titles)
	}
}

func TestCreateTask(t *testing.T) {
	c, api := newClient(t)

	err := c.CreateTask(context.Background(), "l1", service.RemoteTask{
		Title:     "Buy milk",
		Notes:     "priority: RED",
		Due:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Completed: true,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if len(api.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(api.inserted))
	}
	got := api.inserted[0]
	expected := map[string]string{
		"title":  "Buy milk",
		"notes":  "priority: RED",
		"due":    "2025-01-02T00:00:00Z",
		"status": "completed",
	}
	for k, v := range expected {
		if got[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestCreateTask_OpenWithoutDue(t *testing.T) {
	c, api := newClient(t)

	if err := c.CreateTask(context.Background(), "l1", service.RemoteTask{Title: "x"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	got := api.inserted[0]
	if got["status"] != "needsAction" {
		t.Errorf("expected needsAction, got %q", got["status"])
	}
	if _, ok := got["due"]; ok {
		t.Errorf("expected no due date, got %q", got["due"])
	}
}

func TestErrorMapping(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	_, err := c.ListTitles(ctx, "denied")
	if !errors.Is(err, service.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	err = c.CreateTask(ctx, "gone", service.RemoteTask{Title: "x"})
	if !errors.Is(err, service.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

// Package googletasks implements service.Remote on the Google Tasks API.
package googletasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasklist/internal/config"
	"tasklist/internal/service"
)

const (
	// PageSize is the number of items requested per page.
	PageSize = 100

	// APITimeout is the timeout for a single API call, pagination included.
	APITimeout = 10 * time.Second

	statusCompleted   = "completed"
	statusNeedsAction = "needsAction"
)

// ErrAuth is returned when Google rejects the stored credentials.
var ErrAuth = fmt.Errorf("%w: token expired or revoked (run: tasklist login)", service.ErrUnauthorized)

var _ service.Remote = (*Client)(nil)

// Client implements service.Remote using the Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// New creates a client from oauth_client.json and token.json in the config dir.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oc, err := LoadOAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, oc.TokenSource(ctx, token))
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Open checks that credentials are present before creating a client.
func Open(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("oauth_client.json not found in %s", cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, errors.New("not logged in (run: tasklist login)")
	}
	return New(ctx, cfg)
}

// NewWithEndpoint creates a client talking to endpoint with a plain HTTP client (for testing).
func NewWithEndpoint(ctx context.Context, httpClient *http.Client, endpoint string) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, name string) (service.RemoteList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	want := strings.ToLower(strings.TrimSpace(name))
	var matches []service.RemoteList
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, l := range resp.Items {
			if strings.ToLower(strings.TrimSpace(l.Title)) == want {
				matches = append(matches, service.RemoteList{ID: l.Id, Title: l.Title})
			}
		}
		return nil
	})
	if err != nil {
		return service.RemoteList{}, wrapError(err)
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

// CreateList creates a new task list.
func (c *Client) CreateList(ctx context.Context, name string) (service.RemoteList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	l, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: name}).Context(ctx).Do()
	if err != nil {
		return service.RemoteList{}, wrapError(err)
	}
	return service.RemoteList{ID: l.Id, Title: l.Title}, nil
}

// ListTitles returns the titles of every task in a list, completed and hidden included.
func (c *Client) ListTitles(ctx context.Context, listID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var titles []string
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				titles = append(titles, t.Title)
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return titles, nil
}

// CreateTask inserts a task into a list.
func (c *Client) CreateTask(ctx context.Context, listID string, t service.RemoteTask) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(listID, toAPI(t)).Context(ctx).Do()
	return wrapError(err)
}

func toAPI(t service.RemoteTask) *tasks.Task {
	status := statusNeedsAction
	if t.Completed {
		status = statusCompleted
	}
	out := &tasks.Task{
		Title:  t.Title,
		Notes:  t.Notes,
		Status: status,
	}
	if !t.Due.IsZero() {
		out.Due = t.Due.UTC().Format(time.RFC3339)
	}
	return out
}

// wrapError maps API errors onto the errors callers check for.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrAuth
		case http.StatusNotFound:
			return service.ErrListNotFound
		}
	}
	return err
}

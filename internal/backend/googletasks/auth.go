package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	tasks "google.golang.org/api/tasks/v1"

	"tasklist/internal/config"
)

const (
	// OAuth callback timeout
	callbackTimeout = 5 * time.Minute

	// Token exchange timeout
	exchangeTimeout = 30 * time.Second

	// First port tried for the OAuth callback server, then the next few.
	callbackStartPort   = 8085
	callbackMaxAttempts = 5
)

// ErrNoCallbackPort is returned when no local port could be bound.
var ErrNoCallbackPort = errors.New("could not bind to local port for OAuth callback")

// LoadOAuthConfig reads oauth_client.json from the config directory.
func LoadOAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}
	oc, err := google.ConfigFromJSON(clientJSON, tasks.TasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}
	return oc, nil
}

// LoadToken reads a stored token.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}
	return &token, nil
}

// SaveToken writes a token with mode 0600.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// TokenValid reports whether the stored token has a refresh token and can
// still produce an access token.
func TokenValid(ctx context.Context, cfg *config.Config) bool {
	token, err := LoadToken(cfg.TokenPath())
	if err != nil || token.RefreshToken == "" {
		return false
	}
	oc, err := LoadOAuthConfig(cfg)
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err = oc.TokenSource(ctx, token).Token()
	return err == nil
}

// Authorize runs the desktop OAuth flow: it prints the consent URL to prompt,
// waits for the redirect on a local port and exchanges the code using PKCE.
func Authorize(ctx context.Context, oc *oauth2.Config, prompt io.Writer) (*oauth2.Token, error) {
	port, listener, err := listenCallback()
	if err != nil {
		return nil, err
	}
	defer listener.Close()

	oc.RedirectURL = fmt.Sprintf("http://localhost:%d/callback", port)
	verifier := oauth2.GenerateVerifier()
	authURL := oc.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	fmt.Fprintln(prompt, "Open this URL in your browser:")
	fmt.Fprintln(prompt, authURL)

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No code in callback", http.StatusBadRequest)
			errCh <- errors.New("no code in callback")
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>tasklist is authorized</h1><p>You may close this window.</p></body></html>")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, err
	case <-time.After(callbackTimeout):
		return nil, errors.New("oauth callback timed out")
	case <-ctx.Done():
		return nil, errors.New("cancelled")
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()
	token, err := oc.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

func listenCallback() (int, net.Listener, error) {
	for i := 0; i < callbackMaxAttempts; i++ {
		port := callbackStartPort + i
		l, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
		if err == nil {
			return port, l, nil
		}
	}
	return 0, nil, ErrNoCallbackPort
}

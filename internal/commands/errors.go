package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"tasklist/internal/csvstore"
	"tasklist/internal/exitcode"
	"tasklist/internal/service"
	"tasklist/internal/task"
)

// Today returns the current local date. Tests replace it.
var Today = func() civil.Date {
	return civil.DateOf(time.Now())
}

// exitFor maps a service error to an exit code. The service has already
// reported the error, so nothing is printed here.
func exitFor(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, service.ErrUnauthorized):
		return exitcode.AuthError
	case errors.Is(err, task.ErrNotFound),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, csvstore.ErrMalformed),
		errors.Is(err, service.ErrAmbiguousList):
		return exitcode.UserError
	default:
		return exitcode.BackendError
	}
}

// usageError prints a user error and returns its exit code.
func usageError(errOut io.Writer, format string, a ...any) int {
	fmt.Fprintf(errOut, "error: "+format+"\n", a...)
	return exitcode.UserError
}

// idError prints the error returned by ParseID.
func idError(errOut io.Writer, err error) int {
	return usageError(errOut, "%v", err)
}

// parseDescription joins args into a description. Records are comma separated
// lines with no quoting, so line breaks and commas are rejected.
func parseDescription(words []string) (string, error) {
	desc := strings.TrimSpace(strings.Join(words, " "))
	if desc == "" {
		return "", errors.New("description required")
	}
	if strings.ContainsAny(desc, "\r\n") {
		return "", errors.New("description must be a single line")
	}
	if strings.Contains(desc, ",") {
		return "", errors.New("description must not contain a comma")
	}
	return desc, nil
}

// optString is a string flag that remembers whether it was given.
type optString struct {
	value string
	set   bool
}

func (o *optString) String() string { return o.value }

func (o *optString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// Package csvstore reads and writes tasks as flat comma-separated records.
//
// One record per line, no header row, no quoting:
//
//	<id>,<description>,<YYYY-MM-DD>,<true|false>,<RED|YELLOW|GREEN>
//
// Embedded commas are not escaped. A description containing a comma is
// written as-is and the resulting line fails to parse on load.
package csvstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"tasklist/internal/task"
)

const fieldCount = 5

// maxLineSize bounds a single record.
const maxLineSize = 1 << 20

// ErrMalformed is matched by every per-line parse failure.
var ErrMalformed = errors.New("malformed record")

// ParseError reports a single line that could not be decoded.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Options controls decoding and logging.
type Options struct {
	// Strict makes a load all-or-nothing: if any line fails, nothing is appended.
	Strict bool

	// Log receives warnings. Nil discards them.
	Log *zerolog.Logger
}

func (o Options) logger() *zerolog.Logger {
	if o.Log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Log
}

// FormatRecord renders a task as one record without the trailing newline.
func FormatRecord(t task.Task) string {
	return fmt.Sprintf("%d,%s,%s,%t,%s", t.ID, t.Description, t.Due, t.Completed, t.Priority)
}

// ParseRecord decodes one record. The returned task carries the persisted id;
// callers appending it to a store get a new one.
func ParseRecord(line string) (task.Task, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return task.Task{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformed, fieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: invalid id %q", ErrMalformed, fields[0])
	}

	due, err := civil.ParseDate(strings.TrimSpace(fields[2]))
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: invalid date %q", ErrMalformed, fields[2])
	}

	completed, err := parseBool(fields[3])
	if err != nil {
		return task.Task{}, err
	}

	priority, err := task.ParsePriority(fields[4])
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return task.Task{
		ID:          id,
		Description: fields[1],
		Due:         due,
		Completed:   completed,
		Priority:    priority,
	}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: invalid completed flag %q", ErrMalformed, s)
}

// Encode writes one record per task.
func Encode(w io.Writer, tasks []task.Task, opts Options) error {
	log := opts.logger()
	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		if strings.ContainsAny(t.Description, ",\r\n") {
			log.Warn().
				Int("id", t.ID).
				Str("description", t.Description).
				Msg("description contains a comma or line break and will not load back")
		}
		if _, err := bw.WriteString(FormatRecord(t) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads records from r and appends them to s, returning how many were
// appended. Blank lines are skipped. Malformed lines come back as joined
// *ParseError values; without Strict the good lines are still appended.
func Decode(r io.Reader, s *task.Store, opts Options) (int, error) {
	log := opts.logger()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		pending []task.Task
		errs    []error
		added   int
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := ParseRecord(line)
		if err != nil {
			log.Debug().Int("line", lineNo).Err(err).Msg("skipping malformed record")
			errs = append(errs, &ParseError{Line: lineNo, Text: line, Err: err})
			continue
		}

		if opts.Strict {
			pending = append(pending, t)
			continue
		}
		s.Append(t)
		added++
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read: %w", err))
	}

	if len(errs) > 0 {
		return added, errors.Join(errs...)
	}
	for _, t := range pending {
		s.Append(t)
		added++
	}
	return added, nil
}

// Load reads the file at path into s. See Decode for partial-load behaviour.
func Load(path string, s *task.Store, opts Options) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := Decode(f, s, opts)
	if err != nil {
		return n, fmt.Errorf("load %s: %w", path, err)
	}
	opts.logger().Debug().Str("path", path).Int("tasks", n).Msg("loaded tasks")
	return n, nil
}

// Save writes tasks to path. The file is replaced atomically, so a failed save
// leaves any previous content in place.
func Save(path string, tasks []task.Task, opts Options) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, tasks, opts); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	opts.logger().Debug().Str("path", path).Int("tasks", len(tasks)).Msg("saved tasks")
	return nil
}

package service

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Reporter receives the outcome of every mutating or IO operation.
// Front ends pick the implementation.
type Reporter interface {
	Success(msg string)
	NotFound(op string, id int)
	Failure(op string, err error)
}

// ConsoleReporter prints outcomes as CLI text.
type ConsoleReporter struct {
	Out    io.Writer
	ErrOut io.Writer
	Quiet  bool
}

// NewConsoleReporter creates a ConsoleReporter.
func NewConsoleReporter(out, errOut io.Writer, quiet bool) *ConsoleReporter {
	return &ConsoleReporter{Out: out, ErrOut: errOut, Quiet: quiet}
}

func (r *ConsoleReporter) Success(msg string) {
	if !r.Quiet {
		fmt.Fprintln(r.Out, msg)
	}
}

func (r *ConsoleReporter) NotFound(op string, id int) {
	fmt.Fprintf(r.ErrOut, "error: task not found: %d\n", id)
}

func (r *ConsoleReporter) Failure(op string, err error) {
	fmt.Fprintf(r.ErrOut, "error: %v\n", err)
}

// LogReporter records outcomes as log events.
type LogReporter struct {
	log *zerolog.Logger
}

// NewLogReporter creates a LogReporter writing to log.
func NewLogReporter(log *zerolog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Success(msg string) {
	r.log.Debug().Msg(msg)
}

func (r *LogReporter) NotFound(op string, id int) {
	r.log.Debug().Str("op", op).Int("id", id).Msg("task not found")
}

func (r *LogReporter) Failure(op string, err error) {
	r.log.Debug().Str("op", op).Err(err).Msg("operation failed")
}

// MultiReporter fans every outcome out to each reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) Success(msg string) {
	for _, r := range m {
		r.Success(msg)
	}
}

func (m MultiReporter) NotFound(op string, id int) {
	for _, r := range m {
		r.NotFound(op, id)
	}
}

func (m MultiReporter) Failure(op string, err error) {
	for _, r := range m {
		r.Failure(op, err)
	}
}

// Discard drops every outcome.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Success(string)        {}
func (discard) NotFound(string, int)  {}
func (discard) Failure(string, error) {}

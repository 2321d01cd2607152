package service_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tasklist/internal/service"
)

func TestConsoleReporter(t *testing.T) {
	var out, errOut bytes.Buffer
	r := service.NewConsoleReporter(&out, &errOut, false)

	r.Success("added 1: Buy milk")
	r.NotFound("remove", 999)
	r.Failure("save", errors.New("disk full"))

	if out.String() != "added 1: Buy milk\n" {
		t.Errorf("unexpected stdout %q", out.String())
	}
	expected := "error: task not found: 999\nerror: disk full\n"
	if errOut.String() != expected {
		t.Errorf("expected %q, got %q", expected, errOut.String())
	}
}

func TestConsoleReporter_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	r := service.NewConsoleReporter(&out, &errOut, true)

	r.Success("added 1: x")
	r.NotFound("get", 3)

	if out.String() != "" {
		t.Errorf("expected quiet stdout, got %q", out.String())
	}
	if errOut.String() != "error: task not found: 3\n" {
		t.Errorf("errors must still be shown, got %q", errOut.String())
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	r := service.NewLogReporter(&log)

	r.NotFound("complete", 7)
	r.Failure("load", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{`"op":"complete"`, `"id":7`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %q", want, out)
		}
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := service.MultiReporter{a, b, service.Discard}

	m.Success("ok")
	m.NotFound("get", 1)
	m.Failure("save", errors.New("x"))

	for i, r := range []*recorder{a, b} {
		if len(r.successes) != 1 || len(r.notFound) != 1 || len(r.failures) != 1 {
			t.Errorf("reporter %d: expected one of each, got %+v", i, r)
		}
	}
}

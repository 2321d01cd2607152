// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklist/internal/task"
)

// FormatTask formats a task row.
// Format: "{ID:>4}  [{x| }] {PRIORITY:<6}  {YYYY-MM-DD}  {DESCRIPTION}\n"
func FormatTask(w io.Writer, t task.Task) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %-6s  %s  %s\n", t.ID, mark, t.Priority, t.Due, normalizeDescription(t.Description))
}

// FormatTasks formats every task in order.
func FormatTasks(w io.Writer, tasks []task.Task) {
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatDetail formats a single task as labelled fields for the show command.
func FormatDetail(w io.Writer, t task.Task) {
	status := "open"
	if t.Completed {
		status = "done"
	}
	fmt.Fprintf(w, "id:          %d\n", t.ID)
	fmt.Fprintf(w, "description: %s\n", normalizeDescription(t.Description))
	fmt.Fprintf(w, "due:         %s\n", t.Due)
	fmt.Fprintf(w, "priority:    %s\n", t.Priority)
	fmt.Fprintf(w, "status:      %s\n", status)
}

// normalizeDescription normalizes a description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}

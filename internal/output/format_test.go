package output_test

import (
	"bytes"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"tasklist/internal/output"
	"tasklist/internal/task"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name     string
		task     task.Task
		expected string
	}{
		{
			name:     "open",
			task:     task.Task{ID: 1, Description: "Buy milk", Due: civil.Date{Year: 2025, Month: time.January, Day: 1}, Priority: task.PriorityRed},
			expected: "   1  [ ] RED     2025-01-01  Buy milk\n",
		},
		{
			name:     "done",
			task:     task.Task{ID: 12, Description: "Clean", Due: civil.Date{Year: 2025, Month: time.February, Day: 3}, Completed: true, Priority: task.PriorityYellow},
			expected: "  12  [x] YELLOW  2025-02-03  Clean\n",
		},
		{
			name:     "newline and empty",
			task:     task.Task{ID: 3, Description: " \r\n", Due: civil.Date{Year: 2025, Month: time.March, Day: 9}, Priority: task.PriorityGreen},
			expected: "   3  [ ] GREEN   2025-03-09  (untitled)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.FormatTask(&buf, tt.task)
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestFormatDetail(t *testing.T) {
	var buf bytes.Buffer
	output.FormatDetail(&buf, task.Task{
		ID:          2,
		Description: "line one\nline two",
		Due:         civil.Date{Year: 2025, Month: time.December, Day: 24},
		Completed:   true,
		Priority:    task.PriorityGreen,
	})

	expected := "id:          2\n" +
		"description: line one line two\n" +
		"due:         2025-12-24\n" +
		"priority:    GREEN\n" +
		"status:      done\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// GoldenDir holds golden files, relative to the package under test.
const GoldenDir = "testdata"

// Golden compares output against testdata/<name>.golden.
// With GOLDEN_UPDATE set, the golden file is rewritten instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join(GoldenDir, name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll(GoldenDir, 0755); err != nil {
			t.Fatalf("create %s: %v", GoldenDir, err)
		}
		if err := os.WriteFile(path, got, 0644); err != nil {
			t.Fatalf("update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden file %s: %v\nGot:\n%s", path, err, got)
	}

	if string(got) != string(want) {
		t.Errorf("output mismatch for %s\nWant:\n%s\nGot:\n%s", name, want, got)
	}
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}

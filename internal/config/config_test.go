package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"tasklist/internal/config"
	"tasklist/internal/task"
)

func writeSettings(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(body), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cfg.TasksPath(); got != filepath.Join(dir, "tasks.csv") {
		t.Errorf("expected default tasks path, got %q", got)
	}
	p, err := cfg.DefaultPriority()
	if err != nil || p != task.PriorityRed {
		t.Errorf("expected RED, got %s (err=%v)", p, err)
	}
	if got := cfg.PublishList(); got != config.DefaultPublishList {
		t.Errorf("expected %q, got %q", config.DefaultPublishList, got)
	}
}

func TestNew_DefaultDirFromXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != filepath.Join(xdg, "tasklist") {
		t.Errorf("expected %q, got %q", filepath.Join(xdg, "tasklist"), cfg.Dir)
	}
}

func TestNew_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "tasks_file: mine.csv\ndefault_priority: green\npublish_list: Chores\nlog_level: info\n")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cfg.TasksPath(); got != filepath.Join(dir, "mine.csv") {
		t.Errorf("expected relative tasks_file resolved against the config dir, got %q", got)
	}
	if p, _ := cfg.DefaultPriority(); p != task.PriorityGreen {
		t.Errorf("expected GREEN, got %s", p)
	}
	if cfg.PublishList() != "Chores" {
		t.Errorf("expected Chores, got %q", cfg.PublishList())
	}
	if cfg.Settings.LogLevel != "info" {
		t.Errorf("expected info, got %q", cfg.Settings.LogLevel)
	}
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "default_priority: green\npublish_list: Chores\n")
	abs := filepath.Join(t.TempDir(), "env.csv")
	t.Setenv("TASKLIST_FILE", abs)
	t.Setenv("TASKLIST_DEFAULT_PRIORITY", "yellow")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.TasksPath() != abs {
		t.Errorf("expected %q, got %q", abs, cfg.TasksPath())
	}
	if p, _ := cfg.DefaultPriority(); p != task.PriorityYellow {
		t.Errorf("expected YELLOW, got %s", p)
	}
	if cfg.PublishList() != "Chores" {
		t.Errorf("expected yaml value to survive, got %q", cfg.PublishList())
	}
}

func TestTasksPath_FlagWins(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "tasks_file: mine.csv\n")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg.File = "/tmp/flag.csv"
	if cfg.TasksPath() != "/tmp/flag.csv" {
		t.Errorf("expected flag to win, got %q", cfg.TasksPath())
	}
}

func TestNew_BadYAML(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "tasks_file: [unterminated\n")

	if _, err := config.New(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaultPriority_Invalid(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir(), Settings: config.Settings{DefaultPriority: "purple"}}
	if _, err := cfg.DefaultPriority(); err == nil {
		t.Error("expected error for invalid priority")
	}
}

func TestTokenHelpers(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	if cfg.HasToken() || cfg.HasOAuthClient() {
		t.Fatal("expected no credentials in a fresh dir")
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !cfg.HasToken() {
		t.Error("expected token to exist")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("RemoveToken: %v", err)
	}
	if cfg.HasToken() {
		t.Error("expected token to be removed")
	}
}

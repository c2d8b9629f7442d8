package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, dir
}

func TestWriteAndReadRulebook(t *testing.T) {
	s, dir := newStore(t)

	if s.RulebookExists() {
		t.Fatalf("RulebookExists() = true before any write")
	}
	if err := s.WriteRulebook("# Rulebook\n"); err != nil {
		t.Fatalf("WriteRulebook() error = %v", err)
	}
	if !s.RulebookExists() {
		t.Fatalf("RulebookExists() = false after write")
	}

	got, err := s.ReadRulebook()
	if err != nil {
		t.Fatalf("ReadRulebook() error = %v", err)
	}
	if got != "# Rulebook\n" {
		t.Fatalf("ReadRulebook() = %q, want %q", got, "# Rulebook\n")
	}

	if s.RulebookPath() != filepath.Join(dir, RulebookDir, "RULEBOOK.md") {
		t.Fatalf("RulebookPath() = %q", s.RulebookPath())
	}
}

func TestWriteRulebookLeavesNoTempFiles(t *testing.T) {
	s, _ := newStore(t)
	if err := s.WriteRulebook("content"); err != nil {
		t.Fatalf("WriteRulebook() error = %v", err)
	}

	entries, err := os.ReadDir(s.Root())
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".rulebook-tmp-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestBackupRulebookPreservesOriginalContents(t *testing.T) {
	s, _ := newStore(t)
	if err := s.WriteRulebook("original contents\n"); err != nil {
		t.Fatalf("WriteRulebook() error = %v", err)
	}
	if err := s.BackupRulebook(); err != nil {
		t.Fatalf("BackupRulebook() error = %v", err)
	}
	if err := s.WriteRulebook("new contents\n"); err != nil {
		t.Fatalf("WriteRulebook() error = %v", err)
	}

	backup, err := os.ReadFile(s.BackupPath())
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(backup) != "original contents\n" {
		t.Fatalf("backup = %q, want %q", backup, "original contents\n")
	}

	current, _ := s.ReadRulebook()
	if current != "new contents\n" {
		t.Fatalf("rulebook = %q, want %q", current, "new contents\n")
	}
}

func TestBackupWithoutRulebookFails(t *testing.T) {
	s, _ := newStore(t)
	if err := s.BackupRulebook(); err == nil {
		t.Fatalf("BackupRulebook() = nil error, want failure without rulebook")
	}
}

func TestAnswersRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	in := map[string]string{
		"project_name": "demo",
		"framework":    "Next.js",
		"language":     "TypeScript",
	}
	if err := s.SaveAnswers(in); err != nil {
		t.Fatalf("SaveAnswers() error = %v", err)
	}

	out, err := LoadAnswers(s.AnswersPath())
	if err != nil {
		t.Fatalf("LoadAnswers() error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("LoadAnswers() has %d entries, want %d", len(out), len(in))
	}
	for k, v := range in {
		if out[k] != v {
			t.Fatalf("LoadAnswers()[%q] = %q, want %q", k, out[k], v)
		}
	}
}

func TestLoadAnswersBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadAnswers(path); err == nil {
		t.Fatalf("LoadAnswers() = nil error, want parse error")
	}
}

// Package store manages the project-local .rulebook directory: the generated
// rulebook, its backup, and the answers snapshot used for non-interactive
// regeneration.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/agusx1211/rulebook/internal/debug"
)

// RulebookDir is the project-local configuration directory.
const RulebookDir = ".rulebook"

const (
	rulebookFile = "RULEBOOK.md"
	backupSuffix = ".backup"
	answersFile  = "answers.yaml"
)

// Store gives access to one project's .rulebook directory.
type Store struct {
	root string // path to the .rulebook directory
	mu   sync.Mutex
}

// New returns a store rooted at projectDir/.rulebook. Nothing is created
// until Init or the first write.
func New(projectDir string) (*Store, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project dir: %w", err)
	}
	return &Store{root: filepath.Join(abs, RulebookDir)}, nil
}

// Root returns the .rulebook directory path.
func (s *Store) Root() string {
	return s.root
}

// RulebookPath returns the output document path.
func (s *Store) RulebookPath() string {
	return filepath.Join(s.root, rulebookFile)
}

// BackupPath returns the sibling backup path for the rulebook.
func (s *Store) BackupPath() string {
	return s.RulebookPath() + backupSuffix
}

// AnswersPath returns the answers snapshot path.
func (s *Store) AnswersPath() string {
	return filepath.Join(s.root, answersFile)
}

// RulebookExists reports whether a generated rulebook is already present.
func (s *Store) RulebookExists() bool {
	_, err := os.Stat(s.RulebookPath())
	return err == nil
}

// Init creates the .rulebook directory if needed.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", s.root, err)
	}
	return nil
}

// WriteRulebook writes the document atomically: the content goes to a temp
// file in the same directory, then renames over the target. A killed process
// never leaves a half-written rulebook behind.
func (s *Store) WriteRulebook(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Init(); err != nil {
		return err
	}
	if err := writeFileAtomic(s.RulebookPath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing rulebook: %w", err)
	}
	debug.LogKV("store", "rulebook written", "path", s.RulebookPath(), "bytes", len(content))
	return nil
}

// ReadRulebook returns the current document contents.
func (s *Store) ReadRulebook() (string, error) {
	data, err := os.ReadFile(s.RulebookPath())
	if err != nil {
		return "", fmt.Errorf("reading rulebook: %w", err)
	}
	return string(data), nil
}

// BackupRulebook copies the current rulebook to its .backup sibling. Calling
// it without an existing rulebook is an error.
func (s *Store) BackupRulebook() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.RulebookPath())
	if err != nil {
		return fmt.Errorf("reading rulebook for backup: %w", err)
	}
	if err := writeFileAtomic(s.BackupPath(), data, 0644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	debug.LogKV("store", "backup written", "path", s.BackupPath())
	return nil
}

// SaveAnswers persists the answers snapshot as YAML.
func (s *Store) SaveAnswers(m map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Init(); err != nil {
		return err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	if err := writeFileAtomic(s.AnswersPath(), data, 0644); err != nil {
		return fmt.Errorf("writing answers: %w", err)
	}
	return nil
}

// LoadAnswers reads an answers snapshot. The path may be the store's own
// snapshot or any operator-provided YAML file.
func LoadAnswers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	return m, nil
}

// writeFileAtomic writes data via a temp file in the target's directory and
// renames it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rulebook-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	ok := false
	defer func() {
		if !ok {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	ok = true
	return nil
}

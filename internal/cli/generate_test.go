package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agusx1211/rulebook/internal/question"
)

func fullAnswerMap() map[string]string {
	return map[string]string{
		question.IDProjectName:        "demo",
		question.IDFramework:          "Next.js",
		question.IDLanguage:           "TypeScript",
		question.IDStateMgmt:          "Zustand",
		question.IDStyling:            "Tailwind CSS",
		question.IDTesting:            "Vitest + Playwright",
		question.IDDatabase:           "PostgreSQL",
		question.IDORM:                "Prisma",
		question.IDAPIType:            "REST",
		question.IDDeployment:         "Vercel",
		question.IDFileNaming:         "kebab-case (button-card.tsx)",
		question.IDComponentStructure: "Folder per component (Button/Button.tsx)",
	}
}

func writeAnswerFile(t *testing.T, m map[string]string) string {
	t.Helper()
	var b strings.Builder
	for k, v := range m {
		b.WriteString(k + ": \"" + v + "\"\n")
	}
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("writing answer file: %v", err)
	}
	return path
}

func TestLoadAnswerFile(t *testing.T) {
	flow := question.Flow(t.TempDir())
	path := writeAnswerFile(t, fullAnswerMap())

	st, err := loadAnswerFile(path, flow)
	if err != nil {
		t.Fatalf("loadAnswerFile() error = %v", err)
	}
	if got, _ := st.Get(question.IDFramework); got != "Next.js" {
		t.Fatalf("framework = %q, want %q", got, "Next.js")
	}
	if st.Len() != len(flow) {
		t.Fatalf("Len() = %d, want %d", st.Len(), len(flow))
	}
}

func TestLoadAnswerFileMissingField(t *testing.T) {
	flow := question.Flow(t.TempDir())
	m := fullAnswerMap()
	delete(m, question.IDDatabase)
	path := writeAnswerFile(t, m)

	_, err := loadAnswerFile(path, flow)
	if err == nil {
		t.Fatal("loadAnswerFile() error = nil, want missing-field error")
	}
	if !strings.Contains(err.Error(), question.IDDatabase) {
		t.Fatalf("error %q does not name the missing field", err)
	}
}

func TestLoadAnswerFileNotFound(t *testing.T) {
	flow := question.Flow(t.TempDir())
	_, err := loadAnswerFile(filepath.Join(t.TempDir(), "nope.yaml"), flow)
	if err == nil {
		t.Fatal("loadAnswerFile() error = nil, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestGenerateDeclineLeavesExistingRulebookUntouched(t *testing.T) {
	dir := t.TempDir()
	s, err := openStore(dir)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	const original = "# old rulebook\n\nhand-tuned content\n"
	if err := s.WriteRulebook(original); err != nil {
		t.Fatalf("WriteRulebook() error = %v", err)
	}

	var out bytes.Buffer
	err = generate(generateOptions{
		dir: dir,
		in:  strings.NewReader("n\n"),
		out: &out,
	})
	if err != nil {
		t.Fatalf("generate() error = %v, want nil on decline", err)
	}

	got, err := s.ReadRulebook()
	if err != nil {
		t.Fatalf("ReadRulebook() error = %v", err)
	}
	if got != original {
		t.Fatalf("rulebook changed after decline:\ngot  %q\nwant %q", got, original)
	}
	if _, err := os.Stat(s.BackupPath()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("backup at %s exists after decline (stat err = %v)", s.BackupPath(), err)
	}
	if !strings.Contains(out.String(), "Nothing was changed") {
		t.Fatalf("output %q missing the keep message", out.String())
	}
}

func TestGenerateAcceptBacksUpAndRewrites(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	s, err := openStore(dir)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	const original = "# old rulebook\n"
	if err := s.WriteRulebook(original); err != nil {
		t.Fatalf("WriteRulebook() error = %v", err)
	}

	// "y" confirms the overwrite, the empty line takes the project-name
	// default, then one first-option pick per choice question.
	var script strings.Builder
	script.WriteString("y\n")
	script.WriteString("\n")
	for _, q := range question.Flow(dir) {
		if q.Kind == question.KindChoice {
			script.WriteString("1\n")
		}
	}

	var out bytes.Buffer
	err = generate(generateOptions{
		dir:         dir,
		saveAnswers: true,
		in:          strings.NewReader(script.String()),
		out:         &out,
	})
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}

	backup, err := os.ReadFile(s.BackupPath())
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(backup) != original {
		t.Fatalf("backup = %q, want the original %q", backup, original)
	}

	doc, err := s.ReadRulebook()
	if err != nil {
		t.Fatalf("ReadRulebook() error = %v", err)
	}
	if doc == original {
		t.Fatal("rulebook was not rewritten after accept")
	}
	if !strings.Contains(doc, "Project Rulebook") {
		t.Fatalf("rewritten rulebook missing header:\n%s", doc[:min(len(doc), 200)])
	}
	if _, err := os.Stat(s.AnswersPath()); err != nil {
		t.Fatalf("answers snapshot missing: %v", err)
	}
}

func TestGenerateCommandRegistered(t *testing.T) {
	for _, name := range []string{"generate", "detect", "preview", "agents"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

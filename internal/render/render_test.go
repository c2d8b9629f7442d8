package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agusx1211/rulebook/internal/answers"
	"github.com/agusx1211/rulebook/internal/question"
)

var fixedNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func fullStore(t *testing.T, overrides map[string]string) *answers.Store {
	t.Helper()
	base := map[string]string{
		question.IDProjectName:        "demo",
		question.IDFramework:          "Next.js",
		question.IDLanguage:           "TypeScript",
		question.IDStateMgmt:          "Zustand",
		question.IDStyling:            "Tailwind CSS",
		question.IDTesting:            "Vitest",
		question.IDDatabase:           "PostgreSQL",
		question.IDORM:                "Prisma",
		question.IDAPIType:            "tRPC",
		question.IDDeployment:         "Vercel",
		question.IDFileNaming:         "PascalCase (Button.tsx)",
		question.IDComponentStructure: "Flat structure (Button.tsx)",
	}
	for k, v := range overrides {
		base[k] = v
	}
	st := answers.New()
	for _, id := range question.IDs(question.Flow("")) {
		if err := st.Set(id, base[id]); err != nil {
			t.Fatalf("Set(%q) error = %v", id, err)
		}
	}
	return st
}

func renderOK(t *testing.T, st *answers.Store) string {
	t.Helper()
	doc, err := Render(st, fixedNow)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return doc
}

func TestRenderHeaderAndTOC(t *testing.T) {
	doc := renderOK(t, fullStore(t, nil))

	if !strings.HasPrefix(doc, "# demo — Project Rulebook\n") {
		t.Fatalf("missing title, doc starts: %q", doc[:60])
	}
	if !strings.Contains(doc, "Generated: 2026-03-14") {
		t.Fatalf("missing generated date")
	}
	if !strings.Contains(doc, "Last Updated: 2026-03-14") {
		t.Fatalf("missing last-updated date")
	}
	for i, e := range tocEntries {
		want := strings.Contains(doc, "("+"#"+e.anchor+")")
		if !want {
			t.Fatalf("TOC entry %d (%s) missing", i+1, e.anchor)
		}
	}
	if len(tocEntries) != 15 {
		t.Fatalf("len(tocEntries) = %d, want 15", len(tocEntries))
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	st := fullStore(t, nil)
	first := renderOK(t, st)
	second := renderOK(t, st)
	if first != second {
		t.Fatalf("Render() output differs between identical invocations")
	}
}

func TestRenderMissingAnswerFails(t *testing.T) {
	st := answers.New()
	_ = st.Set(question.IDProjectName, "demo")
	_, err := Render(st, fixedNow)
	if err == nil {
		t.Fatalf("Render() = nil error, want missing-answer failure")
	}
	if !errors.Is(err, answers.ErrMissing) {
		t.Fatalf("Render() error = %v, want wrapped ErrMissing", err)
	}
}

func TestStateManagementBranches(t *testing.T) {
	tests := []struct {
		value      string
		wantSample string
	}{
		{"Redux Toolkit", "createSlice"},
		{"Zustand", "create<CounterStore>"},
		{"React Context", "createContext"},
	}
	for _, tt := range tests {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDStateMgmt: tt.value}))
		if !strings.Contains(doc, tt.wantSample) {
			t.Fatalf("state %q: sample marker %q missing", tt.value, tt.wantSample)
		}
	}
}

func TestStateManagementUnmatchedIsHeaderOnly(t *testing.T) {
	for _, value := range []string{"Jotai", "Recoil", "None"} {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDStateMgmt: value}))
		if !strings.Contains(doc, "## State Management") {
			t.Fatalf("state %q: section header missing", value)
		}
		if !strings.Contains(doc, "Approach: **"+value+"**") {
			t.Fatalf("state %q: approach line missing", value)
		}
		section := between(doc, "## State Management", "## Styling")
		if strings.Contains(section, "```") {
			t.Fatalf("state %q: unexpected code sample in section: %q", value, section)
		}
	}
}

func TestStylingBranches(t *testing.T) {
	tests := []struct {
		value      string
		wantSample string
	}{
		{"Tailwind CSS", "className="},
		{"CSS Modules", "Card.module.css"},
		{"Styled Components", "styled-components"},
	}
	for _, tt := range tests {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDStyling: tt.value}))
		section := between(doc, "## Styling", "## Testing")
		if !strings.Contains(section, tt.wantSample) {
			t.Fatalf("styling %q: sample marker %q missing", tt.value, tt.wantSample)
		}
	}

	for _, value := range []string{"Emotion", "Sass/SCSS", "Plain CSS"} {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDStyling: value}))
		section := between(doc, "## Styling", "## Testing")
		if strings.Contains(section, "```") {
			t.Fatalf("styling %q: unexpected code sample", value)
		}
	}
}

func TestAPIDesignBranches(t *testing.T) {
	tests := []struct {
		value      string
		wantSample string
	}{
		{"REST", "GET    /api/users"},
		{"GraphQL", "type Query"},
		{"tRPC", "publicProcedure"},
	}
	for _, tt := range tests {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDAPIType: tt.value}))
		if !strings.Contains(doc, tt.wantSample) {
			t.Fatalf("api %q: sample marker %q missing", tt.value, tt.wantSample)
		}
	}

	for _, value := range []string{"gRPC", "None"} {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDAPIType: value}))
		section := between(doc, "## API Design", "## Naming Conventions")
		if strings.Contains(section, "```") {
			t.Fatalf("api %q: unexpected code sample", value)
		}
	}
}

func TestComponentStructureBranchIsExhaustive(t *testing.T) {
	folder := renderOK(t, fullStore(t, map[string]string{
		question.IDComponentStructure: "Folder per component (Button/Button.tsx)",
	}))
	if !strings.Contains(folder, "Button/\n    Button.tsx") {
		t.Fatalf("folder structure sample missing")
	}

	flat := renderOK(t, fullStore(t, map[string]string{
		question.IDComponentStructure: "Flat structure (Button.tsx)",
	}))
	if !strings.Contains(flat, "components/\n  Button.tsx") {
		t.Fatalf("flat structure sample missing")
	}

	// Any unrecognized value falls to the flat branch (the else arm).
	other := renderOK(t, fullStore(t, map[string]string{
		question.IDComponentStructure: "something else",
	}))
	if !strings.Contains(other, "components/\n  Button.tsx") {
		t.Fatalf("else branch did not emit flat structure sample")
	}
}

func TestBackendSectionAllowList(t *testing.T) {
	for _, fw := range []string{"Express", "Fastify", "NestJS"} {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDFramework: fw}))
		if !strings.Contains(doc, "### Backend Guidelines") {
			t.Fatalf("framework %q: backend subsection missing", fw)
		}
	}
	for _, fw := range []string{"Next.js", "Vue.js", "Other"} {
		doc := renderOK(t, fullStore(t, map[string]string{question.IDFramework: fw}))
		if strings.Contains(doc, "### Backend Guidelines") {
			t.Fatalf("framework %q: backend subsection unexpectedly present", fw)
		}
	}
}

func TestDatabaseSectionOmittedForNone(t *testing.T) {
	doc := renderOK(t, fullStore(t, map[string]string{question.IDDatabase: "None"}))
	if strings.Contains(doc, "## Database\n") {
		t.Fatalf("database section present despite None")
	}
	// The TOC anchor remains part of the fixed 15-entry contract.
	if !strings.Contains(doc, "(#database)") {
		t.Fatalf("database TOC anchor missing")
	}
}

func TestDatabaseORMSubLine(t *testing.T) {
	doc := renderOK(t, fullStore(t, nil))
	if !strings.Contains(doc, "ORM: **Prisma**") {
		t.Fatalf("ORM sub-line missing")
	}

	noORM := renderOK(t, fullStore(t, map[string]string{question.IDORM: "None"}))
	section := between(noORM, "## Database", "## API Design")
	if strings.Contains(section, "ORM: **") {
		t.Fatalf("ORM sub-line present despite None")
	}
}

func TestActiveAgentsEndToEndScenario(t *testing.T) {
	// Full stack: Next.js + TypeScript + Zustand + Tailwind + Vitest +
	// PostgreSQL + Prisma + tRPC + Vercel.
	doc := renderOK(t, fullStore(t, nil))
	section := between(doc, "### Specialized Agents", "Run `rulebook agents show")

	want := []string{
		"nextjs-specialist",
		"react-specialist",
		"typescript-pro",
		"tailwind-expert",
		"vitest-expert",
		"postgres-expert",
		"prisma-specialist",
	}

	var gotNames []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- **") {
			continue
		}
		name := line[len("- **"):]
		if idx := strings.Index(name, "**"); idx >= 0 {
			name = name[:idx]
		}
		gotNames = append(gotNames, name)
	}

	if len(gotNames) != len(want) {
		t.Fatalf("specialized agents = %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("specialized agent[%d] = %q, want %q", i, gotNames[i], want[i])
		}
	}
}

func TestCoreAgentsAlwaysListed(t *testing.T) {
	doc := renderOK(t, fullStore(t, map[string]string{
		question.IDFramework: "Other",
		question.IDLanguage:  "JavaScript",
		question.IDStateMgmt: "None",
		question.IDStyling:   "Plain CSS",
		question.IDTesting:   "None",
		question.IDDatabase:  "None",
		question.IDORM:       "None",
		question.IDAPIType:   "None",
	}))
	for _, name := range []string{"code-reviewer", "architect-advisor", "security-auditor", "dependency-auditor"} {
		if !strings.Contains(doc, "**"+name+"**") {
			t.Fatalf("core agent %q missing from document", name)
		}
	}
	if !strings.Contains(doc, "No stack-specific agents matched") {
		t.Fatalf("empty specialized list placeholder missing")
	}
}

func TestNotesSectionCloses(t *testing.T) {
	doc := renderOK(t, fullStore(t, nil))
	idx := strings.LastIndex(doc, "## Notes")
	if idx < 0 {
		t.Fatalf("notes section missing")
	}
	if !strings.Contains(doc[idx:], "rulebook generate") {
		t.Fatalf("notes boilerplate missing")
	}
}

// between returns the substring of doc after marker from up to marker to.
func between(doc, from, to string) string {
	start := strings.Index(doc, from)
	if start < 0 {
		return ""
	}
	rest := doc[start:]
	end := strings.Index(rest[len(from):], to)
	if end < 0 {
		return rest
	}
	return rest[:len(from)+end]
}

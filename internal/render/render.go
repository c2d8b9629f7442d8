// Package render turns a populated answer store into the final RULEBOOK.md
// document. Rendering is a pure function of the store and the clock; given
// equal inputs it produces byte-identical output.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/agusx1211/rulebook/internal/agentcat"
	"github.com/agusx1211/rulebook/internal/answers"
	"github.com/agusx1211/rulebook/internal/debug"
	"github.com/agusx1211/rulebook/internal/question"
)

// tocEntries are the fixed section anchors, in emission order.
var tocEntries = []struct {
	title  string
	anchor string
}{
	{"Tech Stack", "tech-stack"},
	{"Architecture", "architecture"},
	{"Code Organization", "code-organization"},
	{"State Management", "state-management"},
	{"Styling", "styling"},
	{"Testing", "testing"},
	{"Database", "database"},
	{"API Design", "api-design"},
	{"Naming Conventions", "naming-conventions"},
	{"Code Patterns", "code-patterns"},
	{"Security", "security"},
	{"Performance", "performance"},
	{"Accessibility", "accessibility"},
	{"Deployment", "deployment"},
	{"Active Agents", "active-agents"},
}

type sectionFunc func(*answers.Store, *strings.Builder) error

// sections is the fixed render order matching tocEntries.
var sections = []struct {
	name string
	fn   sectionFunc
}{
	{"tech-stack", sectionTechStack},
	{"architecture", sectionArchitecture},
	{"code-organization", sectionCodeOrganization},
	{"state-management", sectionStateManagement},
	{"styling", sectionStyling},
	{"testing", sectionTesting},
	{"database", sectionDatabase},
	{"api-design", sectionAPIDesign},
	{"naming-conventions", sectionNamingConventions},
	{"code-patterns", sectionCodePatterns},
	{"security", sectionSecurity},
	{"performance", sectionPerformance},
	{"accessibility", sectionAccessibility},
	{"deployment", sectionDeployment},
	{"active-agents", sectionActiveAgents},
}

// Render produces the full rulebook document. It fails (rather than emitting
// empty placeholders) when the store is missing any answer a section needs.
func Render(st *answers.Store, now time.Time) (string, error) {
	projectName, err := st.Get(question.IDProjectName)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	date := now.Format("2006-01-02")

	fmt.Fprintf(&b, "# %s — Project Rulebook\n\n", projectName)
	fmt.Fprintf(&b, "Generated: %s\n", date)
	fmt.Fprintf(&b, "Last Updated: %s\n\n", date)

	b.WriteString("## Table of Contents\n\n")
	for i, e := range tocEntries {
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, e.title, e.anchor)
	}
	b.WriteString("\n")

	for _, s := range sections {
		if err := s.fn(st, &b); err != nil {
			return "", fmt.Errorf("rendering section %s: %w", s.name, err)
		}
		debug.LogKV("render", "section emitted", "section", s.name)
	}

	b.WriteString("## Notes\n\n")
	b.WriteString(notesBody)

	return b.String(), nil
}

func sectionActiveAgents(st *answers.Store, b *strings.Builder) error {
	specialized, err := agentcat.Recommend(st)
	if err != nil {
		return err
	}

	b.WriteString("## Active Agents\n\n")
	b.WriteString("### Core Agents\n\n")
	for _, name := range agentcat.Core() {
		info, _ := agentcat.InfoFor(name)
		fmt.Fprintf(b, "- **%s** — %s\n", info.Name, info.Summary)
	}
	b.WriteString("\n### Specialized Agents\n\n")
	if len(specialized) == 0 {
		b.WriteString("_No stack-specific agents matched this configuration._\n")
	}
	for _, name := range specialized {
		info, ok := agentcat.InfoFor(name)
		if !ok {
			return fmt.Errorf("recommended agent %q not in catalog", name)
		}
		fmt.Fprintf(b, "- **%s** — %s\n", info.Name, info.Summary)
	}
	b.WriteString("\nRun `rulebook agents show <name>` for any agent's full prompt document.\n\n")
	return nil
}

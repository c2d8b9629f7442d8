// Package question defines the fixed interview flow the wizard walks through.
package question

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kind is the input style of a single prompt step.
type Kind int

const (
	// KindChoice presents a numbered option list; the answer is the chosen option string.
	KindChoice Kind = iota
	// KindText accepts a free-form line, falling back to a default when empty.
	KindText
	// KindYesNo accepts y/n with a default polarity.
	KindYesNo
)

// Answer field IDs. Every renderer lookup uses one of these.
const (
	IDProjectName        = "project_name"
	IDFramework          = "framework"
	IDLanguage           = "language"
	IDStateMgmt          = "state_mgmt"
	IDStyling            = "styling"
	IDTesting            = "testing"
	IDDatabase           = "database"
	IDORM                = "orm"
	IDAPIType            = "api_type"
	IDDeployment         = "deployment"
	IDFileNaming         = "file_naming"
	IDComponentStructure = "component_structure"
)

// Question describes one prompt step of the interview.
type Question struct {
	ID      string
	Kind    Kind
	Prompt  string
	Options []string // KindChoice only; shown 1-indexed, stored verbatim
	Default string   // KindText only; substituted for empty input
}

// Flow returns the ordered question sequence for one generation run.
// workDir seeds the project-name default.
func Flow(workDir string) []Question {
	name := filepath.Base(workDir)
	if workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			name = filepath.Base(wd)
		}
	}

	return []Question{
		{
			ID:      IDProjectName,
			Kind:    KindText,
			Prompt:  "Project name",
			Default: name,
		},
		{
			ID:     IDFramework,
			Kind:   KindChoice,
			Prompt: "Which framework does this project use?",
			Options: []string{
				"Next.js",
				"React (Vite)",
				"Vue.js",
				"Nuxt",
				"SvelteKit",
				"Express",
				"Fastify",
				"NestJS",
				"Other",
			},
		},
		{
			ID:      IDLanguage,
			Kind:    KindChoice,
			Prompt:  "Primary language?",
			Options: []string{"TypeScript", "JavaScript"},
		},
		{
			ID:     IDStateMgmt,
			Kind:   KindChoice,
			Prompt: "State management approach?",
			Options: []string{
				"Redux Toolkit",
				"Zustand",
				"React Context",
				"Jotai",
				"Recoil",
				"None",
			},
		},
		{
			ID:     IDStyling,
			Kind:   KindChoice,
			Prompt: "Styling approach?",
			Options: []string{
				"Tailwind CSS",
				"CSS Modules",
				"Styled Components",
				"Emotion",
				"Sass/SCSS",
				"Plain CSS",
			},
		},
		{
			ID:     IDTesting,
			Kind:   KindChoice,
			Prompt: "Test framework?",
			Options: []string{
				"Vitest",
				"Jest",
				"Vitest + Playwright",
				"Jest + Playwright",
				"None",
			},
		},
		{
			ID:     IDDatabase,
			Kind:   KindChoice,
			Prompt: "Database?",
			Options: []string{
				"PostgreSQL",
				"MySQL",
				"MongoDB",
				"SQLite",
				"None",
			},
		},
		{
			ID:     IDORM,
			Kind:   KindChoice,
			Prompt: "ORM / data layer?",
			Options: []string{
				"Prisma",
				"Drizzle",
				"TypeORM",
				"Mongoose",
				"None",
			},
		},
		{
			ID:     IDAPIType,
			Kind:   KindChoice,
			Prompt: "API style?",
			Options: []string{
				"REST",
				"GraphQL",
				"tRPC",
				"gRPC",
				"None",
			},
		},
		{
			ID:     IDDeployment,
			Kind:   KindChoice,
			Prompt: "Deployment target?",
			Options: []string{
				"Vercel",
				"Netlify",
				"AWS",
				"Docker (self-hosted)",
				"Cloudflare",
				"Other",
			},
		},
		{
			ID:     IDFileNaming,
			Kind:   KindChoice,
			Prompt: "File naming convention?",
			Options: []string{
				"PascalCase (Button.tsx)",
				"kebab-case (button-card.tsx)",
				"camelCase (buttonCard.tsx)",
			},
		},
		{
			ID:     IDComponentStructure,
			Kind:   KindChoice,
			Prompt: "Component structure?",
			Options: []string{
				"Folder per component (Button/Button.tsx)",
				"Flat structure (Button.tsx)",
			},
		},
	}
}

// IDs returns the answer field IDs of a flow in order.
func IDs(flow []Question) []string {
	ids := make([]string, 0, len(flow))
	for _, q := range flow {
		ids = append(ids, q.ID)
	}
	return ids
}

// Validate checks the structural invariants of a flow: unique IDs and a
// non-empty option list for every choice question.
func Validate(flow []Question) error {
	seen := make(map[string]struct{}, len(flow))
	for _, q := range flow {
		if q.ID == "" {
			return fmt.Errorf("question with empty id (prompt %q)", q.Prompt)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
		if q.Kind == KindChoice && len(q.Options) == 0 {
			return fmt.Errorf("choice question %q has no options", q.ID)
		}
	}
	return nil
}

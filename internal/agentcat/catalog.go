// Package agentcat is the catalog of agent personas the generator can
// recommend and ship prompt documents for.
package agentcat

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/agusx1211/rulebook/internal/answers"
	"github.com/agusx1211/rulebook/internal/question"
)

//go:embed docs
var docsFS embed.FS

// Info describes one recommendable agent persona.
type Info struct {
	Name    string // catalog key, e.g. "nextjs-specialist"
	Title   string // display title
	Summary string // one-line description for listings
	Trigger string // human-readable activation condition shown by `agents`
}

var builtin = map[string]Info{
	"code-reviewer": {
		Name:    "code-reviewer",
		Title:   "Code Reviewer",
		Summary: "Reviews diffs for correctness, clarity, and convention drift",
		Trigger: "always active",
	},
	"architect-advisor": {
		Name:    "architect-advisor",
		Title:   "Architecture Advisor",
		Summary: "Guards module boundaries and dependency direction",
		Trigger: "always active",
	},
	"security-auditor": {
		Name:    "security-auditor",
		Title:   "Security Auditor",
		Summary: "Flags injection, auth, and data-exposure risks",
		Trigger: "always active",
	},
	"dependency-auditor": {
		Name:    "dependency-auditor",
		Title:   "Dependency Auditor",
		Summary: "Watches for risky, stale, or duplicated dependencies",
		Trigger: "always active",
	},
	"nextjs-specialist": {
		Name:    "nextjs-specialist",
		Title:   "Next.js Specialist",
		Summary: "App Router, server components, and Next.js data patterns",
		Trigger: "framework is Next.js",
	},
	"react-specialist": {
		Name:    "react-specialist",
		Title:   "React Specialist",
		Summary: "Component design, hooks discipline, and render performance",
		Trigger: "framework is Next.js or React",
	},
	"vue-specialist": {
		Name:    "vue-specialist",
		Title:   "Vue Specialist",
		Summary: "Composition API, reactivity, and single-file components",
		Trigger: "framework is Vue.js or Nuxt",
	},
	"svelte-specialist": {
		Name:    "svelte-specialist",
		Title:   "Svelte Specialist",
		Summary: "Runes, stores, and SvelteKit routing conventions",
		Trigger: "framework is SvelteKit",
	},
	"node-backend": {
		Name:    "node-backend",
		Title:   "Node Backend Engineer",
		Summary: "Middleware, request lifecycles, and service structure",
		Trigger: "framework is Express, Fastify, or NestJS",
	},
	"typescript-pro": {
		Name:    "typescript-pro",
		Title:   "TypeScript Pro",
		Summary: "Strict typing, generics, and type-level API design",
		Trigger: "language is TypeScript",
	},
	"tailwind-expert": {
		Name:    "tailwind-expert",
		Title:   "Tailwind Expert",
		Summary: "Utility-first styling and design-token discipline",
		Trigger: "styling is Tailwind CSS",
	},
	"vitest-expert": {
		Name:    "vitest-expert",
		Title:   "Vitest Expert",
		Summary: "Fast unit tests, mocking, and coverage hygiene",
		Trigger: "testing includes Vitest",
	},
	"jest-expert": {
		Name:    "jest-expert",
		Title:   "Jest Expert",
		Summary: "Jest configuration, snapshots, and test isolation",
		Trigger: "testing includes Jest",
	},
	"playwright-expert": {
		Name:    "playwright-expert",
		Title:   "Playwright Expert",
		Summary: "End-to-end flows, fixtures, and flake hunting",
		Trigger: "testing includes Playwright",
	},
	"postgres-expert": {
		Name:    "postgres-expert",
		Title:   "Postgres Expert",
		Summary: "Schema design, indexing, and query plans",
		Trigger: "database includes PostgreSQL",
	},
	"mysql-expert": {
		Name:    "mysql-expert",
		Title:   "MySQL Expert",
		Summary: "InnoDB behavior, migrations, and replication basics",
		Trigger: "database includes MySQL",
	},
	"mongo-expert": {
		Name:    "mongo-expert",
		Title:   "MongoDB Expert",
		Summary: "Document modeling, aggregation, and index strategy",
		Trigger: "database includes MongoDB",
	},
	"prisma-specialist": {
		Name:    "prisma-specialist",
		Title:   "Prisma Specialist",
		Summary: "Prisma schema, migrations, and query ergonomics",
		Trigger: "ORM is Prisma",
	},
	"drizzle-specialist": {
		Name:    "drizzle-specialist",
		Title:   "Drizzle Specialist",
		Summary: "Drizzle schema definitions and typed SQL",
		Trigger: "ORM is Drizzle",
	},
}

// InfoFor returns catalog metadata for an agent name.
func InfoFor(name string) (Info, bool) {
	info, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}

// Names returns known agent names in stable order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Core returns the personas recommended for every project, in display order.
func Core() []string {
	return []string{"code-reviewer", "architect-advisor", "security-auditor", "dependency-auditor"}
}

// Doc returns the embedded prompt document for an agent name.
func Doc(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := builtin[name]; !ok {
		return "", fmt.Errorf("unknown agent %q", name)
	}
	data, err := docsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("reading doc for %q: %w", name, err)
	}
	return string(data), nil
}

// frameworkRule appends agents when the framework answer contains the key.
type frameworkRule struct {
	key    string
	agents []string
}

// Recommendation rules, evaluated sequentially and independently. Answers
// that match no rule simply contribute no lines.
var (
	frameworkRules = []frameworkRule{
		{key: "Next.js", agents: []string{"nextjs-specialist", "react-specialist"}},
		{key: "React", agents: []string{"react-specialist"}},
		{key: "Vue", agents: []string{"vue-specialist"}},
		{key: "Nuxt", agents: []string{"vue-specialist"}},
		{key: "Svelte", agents: []string{"svelte-specialist"}},
		{key: "Express", agents: []string{"node-backend"}},
		{key: "Fastify", agents: []string{"node-backend"}},
		{key: "NestJS", agents: []string{"node-backend"}},
	}
	testingRules = []frameworkRule{
		{key: "Vitest", agents: []string{"vitest-expert"}},
		{key: "Jest", agents: []string{"jest-expert"}},
		{key: "Playwright", agents: []string{"playwright-expert"}},
	}
	databaseRules = []frameworkRule{
		{key: "PostgreSQL", agents: []string{"postgres-expert"}},
		{key: "MongoDB", agents: []string{"mongo-expert"}},
		{key: "MySQL", agents: []string{"mysql-expert"}},
	}
)

// Recommend returns the specialized agent names activated by the answers, in
// the fixed check order: framework, language, styling, testing, database,
// ORM. Duplicate matches are collapsed to their first occurrence.
func Recommend(st *answers.Store) ([]string, error) {
	framework, err := st.Get(question.IDFramework)
	if err != nil {
		return nil, err
	}
	language, err := st.Get(question.IDLanguage)
	if err != nil {
		return nil, err
	}
	styling, err := st.Get(question.IDStyling)
	if err != nil {
		return nil, err
	}
	testing, err := st.Get(question.IDTesting)
	if err != nil {
		return nil, err
	}
	database, err := st.Get(question.IDDatabase)
	if err != nil {
		return nil, err
	}
	orm, err := st.Get(question.IDORM)
	if err != nil {
		return nil, err
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(names ...string) {
		for _, n := range names {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}

	for _, r := range frameworkRules {
		if strings.Contains(framework, r.key) {
			add(r.agents...)
		}
	}
	if language == "TypeScript" {
		add("typescript-pro")
	}
	if styling == "Tailwind CSS" {
		add("tailwind-expert")
	}
	for _, r := range testingRules {
		if strings.Contains(testing, r.key) {
			add(r.agents...)
		}
	}
	for _, r := range databaseRules {
		if strings.Contains(database, r.key) {
			add(r.agents...)
		}
	}
	switch orm {
	case "Prisma":
		add("prisma-specialist")
	case "Drizzle":
		add("drizzle-specialist")
	}

	return out, nil
}

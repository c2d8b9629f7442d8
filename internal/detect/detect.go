// Package detect inspects a project directory to propose interview defaults.
//
// Detection is pure file inspection (package.json, lockfiles, tsconfig); it
// runs no subprocesses. Empty fields mean "inconclusive" and the wizard falls
// back to its configured defaults.
package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agusx1211/rulebook/internal/debug"
	"github.com/agusx1211/rulebook/internal/question"
)

// Detection holds one proposed default per interview field. Field values are
// option labels from the question flow, or empty when nothing matched.
type Detection struct {
	Framework  string
	Language   string
	StateMgmt  string
	Styling    string
	Testing    string
	Database   string
	ORM        string
	APIType    string
	Deployment string
}

// Defaults converts the detection into the wizard's per-question override map.
func (d Detection) Defaults() map[string]string {
	m := make(map[string]string)
	put := func(id, v string) {
		if v != "" {
			m[id] = v
		}
	}
	put(question.IDFramework, d.Framework)
	put(question.IDLanguage, d.Language)
	put(question.IDStateMgmt, d.StateMgmt)
	put(question.IDStyling, d.Styling)
	put(question.IDTesting, d.Testing)
	put(question.IDDatabase, d.Database)
	put(question.IDORM, d.ORM)
	put(question.IDAPIType, d.APIType)
	put(question.IDDeployment, d.Deployment)
	return m
}

// Empty reports whether nothing was detected.
func (d Detection) Empty() bool {
	return d == Detection{}
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// depRule maps a package-name hit to an option label. Rules are checked in
// order; the first hit per field wins.
type depRule struct {
	pkg   string
	label string
}

var (
	frameworkRules = []depRule{
		{"next", "Next.js"},
		{"nuxt", "Nuxt"},
		{"@sveltejs/kit", "SvelteKit"},
		{"@nestjs/core", "NestJS"},
		{"fastify", "Fastify"},
		{"express", "Express"},
		{"vue", "Vue.js"},
		{"react", "React (Vite)"}, // after next: next projects also depend on react
	}
	stateRules = []depRule{
		{"@reduxjs/toolkit", "Redux Toolkit"},
		{"zustand", "Zustand"},
		{"jotai", "Jotai"},
		{"recoil", "Recoil"},
	}
	stylingRules = []depRule{
		{"tailwindcss", "Tailwind CSS"},
		{"styled-components", "Styled Components"},
		{"@emotion/react", "Emotion"},
		{"sass", "Sass/SCSS"},
	}
	ormRules = []depRule{
		{"@prisma/client", "Prisma"},
		{"prisma", "Prisma"},
		{"drizzle-orm", "Drizzle"},
		{"typeorm", "TypeORM"},
		{"mongoose", "Mongoose"},
	}
	databaseRules = []depRule{
		{"pg", "PostgreSQL"},
		{"postgres", "PostgreSQL"},
		{"mysql2", "MySQL"},
		{"mongodb", "MongoDB"},
		{"mongoose", "MongoDB"},
		{"better-sqlite3", "SQLite"},
	}
	apiRules = []depRule{
		{"@trpc/server", "tRPC"},
		{"graphql", "GraphQL"},
		{"@grpc/grpc-js", "gRPC"},
	}
)

// Scan inspects dir and returns proposed defaults. A missing package.json is
// not an error; it just yields an inconclusive detection.
func Scan(dir string) (Detection, error) {
	var det Detection

	deps, err := readDependencies(filepath.Join(dir, "package.json"))
	if err != nil {
		if os.IsNotExist(err) {
			debug.Log("detect", "no package.json, detection inconclusive")
			return det, nil
		}
		return det, err
	}

	has := func(name string) bool {
		_, ok := deps[name]
		return ok
	}
	first := func(rules []depRule) string {
		for _, r := range rules {
			if has(r.pkg) {
				return r.label
			}
		}
		return ""
	}

	det.Framework = first(frameworkRules)
	det.StateMgmt = first(stateRules)
	det.Styling = first(stylingRules)
	det.ORM = first(ormRules)
	det.Database = first(databaseRules)
	det.APIType = first(apiRules)
	det.Testing = detectTesting(has)
	det.Language = detectLanguage(dir, has)
	det.Deployment = detectDeployment(dir)

	debug.LogKV("detect", "scan complete",
		"framework", det.Framework,
		"language", det.Language,
		"testing", det.Testing,
	)
	return det, nil
}

func readDependencies(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for k, v := range pkg.Dependencies {
		deps[k] = v
	}
	for k, v := range pkg.DevDependencies {
		deps[k] = v
	}
	return deps, nil
}

// detectTesting combines unit and e2e runners into the flow's combined labels.
func detectTesting(has func(string) bool) string {
	unit := ""
	switch {
	case has("vitest"):
		unit = "Vitest"
	case has("jest"):
		unit = "Jest"
	}
	if has("@playwright/test") || has("playwright") {
		if unit != "" {
			return unit + " + Playwright"
		}
		return ""
	}
	return unit
}

func detectLanguage(dir string, has func(string) bool) string {
	if has("typescript") {
		return "TypeScript"
	}
	if _, err := os.Stat(filepath.Join(dir, "tsconfig.json")); err == nil {
		return "TypeScript"
	}
	return ""
}

// detectDeployment goes by platform config files in the project root.
func detectDeployment(dir string) string {
	checks := []struct {
		file  string
		label string
	}{
		{"vercel.json", "Vercel"},
		{"netlify.toml", "Netlify"},
		{"wrangler.toml", "Cloudflare"},
		{"Dockerfile", "Docker (self-hosted)"},
	}
	for _, c := range checks {
		if _, err := os.Stat(filepath.Join(dir, c.file)); err == nil {
			return c.label
		}
	}
	return ""
}

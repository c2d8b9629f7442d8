package render

import (
	"fmt"
	"strings"

	"github.com/agusx1211/rulebook/internal/answers"
	"github.com/agusx1211/rulebook/internal/question"
)

// backendFrameworks is the allow-list for the backend guidelines subsection.
// Matched by substring so combined labels ("NestJS (standalone)") still hit.
var backendFrameworks = []string{"Express", "Fastify", "NestJS"}

func isBackendFramework(framework string) bool {
	for _, name := range backendFrameworks {
		if strings.Contains(framework, name) {
			return true
		}
	}
	return false
}

func sectionTechStack(st *answers.Store, b *strings.Builder) error {
	framework, err := st.Get(question.IDFramework)
	if err != nil {
		return err
	}
	language, err := st.Get(question.IDLanguage)
	if err != nil {
		return err
	}
	styling, err := st.Get(question.IDStyling)
	if err != nil {
		return err
	}
	testing, err := st.Get(question.IDTesting)
	if err != nil {
		return err
	}
	database, err := st.Get(question.IDDatabase)
	if err != nil {
		return err
	}
	orm, err := st.Get(question.IDORM)
	if err != nil {
		return err
	}
	apiType, err := st.Get(question.IDAPIType)
	if err != nil {
		return err
	}
	deployment, err := st.Get(question.IDDeployment)
	if err != nil {
		return err
	}

	b.WriteString("## Tech Stack\n\n")
	b.WriteString("| Concern | Choice |\n")
	b.WriteString("|---------|--------|\n")
	fmt.Fprintf(b, "| Framework | %s |\n", framework)
	fmt.Fprintf(b, "| Language | %s |\n", language)
	fmt.Fprintf(b, "| Styling | %s |\n", styling)
	fmt.Fprintf(b, "| Testing | %s |\n", testing)
	fmt.Fprintf(b, "| Database | %s |\n", database)
	fmt.Fprintf(b, "| ORM | %s |\n", orm)
	fmt.Fprintf(b, "| API | %s |\n", apiType)
	fmt.Fprintf(b, "| Deployment | %s |\n", deployment)
	b.WriteString("\n")

	if isBackendFramework(framework) {
		b.WriteString("### Backend Guidelines\n\n")
		switch {
		case strings.Contains(framework, "Express"):
			b.WriteString(`- Routers per domain area mounted in one place; no route handlers in app.ts.
- Centralized error middleware; async handlers wrapped so rejections reach it.
- Validate request bodies with a schema library before they reach services.
`)
		case strings.Contains(framework, "Fastify"):
			b.WriteString(`- Register plugins with explicit encapsulation scopes.
- Use Fastify's JSON-schema validation on every route; it is also the docs.
- Prefer decorators over module-level singletons for shared resources.
`)
		case strings.Contains(framework, "NestJS"):
			b.WriteString(`- One module per domain; providers stay private unless another module needs them.
- DTOs with class-validator on every controller input.
- Keep controllers thin; business logic lives in injectable services.
`)
		}
		b.WriteString("\n")
	}
	return nil
}

func sectionArchitecture(st *answers.Store, b *strings.Builder) error {
	b.WriteString("## Architecture\n\n")
	b.WriteString(architectureBody)
	b.WriteString("\n")
	return nil
}

func sectionCodeOrganization(st *answers.Store, b *strings.Builder) error {
	structure, err := st.Get(question.IDComponentStructure)
	if err != nil {
		return err
	}

	b.WriteString("## Code Organization\n\n")
	// Two-way branch: the folder-per-component option selects the folder
	// layout, every other value gets the flat layout.
	if strings.HasPrefix(structure, "Folder per component") {
		b.WriteString(componentFolderSample)
	} else {
		b.WriteString(componentFlatSample)
	}
	b.WriteString("\n")
	return nil
}

func sectionStateManagement(st *answers.Store, b *strings.Builder) error {
	state, err := st.Get(question.IDStateMgmt)
	if err != nil {
		return err
	}

	b.WriteString("## State Management\n\n")
	fmt.Fprintf(b, "Approach: **%s**\n\n", state)
	switch state {
	case "Redux Toolkit":
		b.WriteString(stateReduxSample)
	case "Zustand":
		b.WriteString(stateZustandSample)
	case "React Context":
		b.WriteString(stateContextSample)
	}
	// Unmatched values (Jotai, Recoil, None, custom answers) get the header
	// only. Intentional: no sample has been written for them yet.
	b.WriteString("\n")
	return nil
}

func sectionStyling(st *answers.Store, b *strings.Builder) error {
	styling, err := st.Get(question.IDStyling)
	if err != nil {
		return err
	}

	b.WriteString("## Styling\n\n")
	fmt.Fprintf(b, "Approach: **%s**\n\n", styling)
	switch styling {
	case "Tailwind CSS":
		b.WriteString(stylingTailwindSample)
	case "CSS Modules":
		b.WriteString(stylingCSSModulesSample)
	case "Styled Components":
		b.WriteString(stylingStyledComponentsSample)
	}
	b.WriteString("\n")
	return nil
}

func sectionTesting(st *answers.Store, b *strings.Builder) error {
	testing, err := st.Get(question.IDTesting)
	if err != nil {
		return err
	}

	b.WriteString("## Testing\n\n")
	fmt.Fprintf(b, "Framework: **%s**\n\n", testing)
	b.WriteString(`- Tests live next to the code they cover.
- Test behavior through the public surface; reaching into internals couples
  tests to refactors.
- Every bug fix lands with a test that fails without it.
- Deterministic tests only: fake timers, seeded data, no live network.
`)
	b.WriteString("\n")
	return nil
}

func sectionDatabase(st *answers.Store, b *strings.Builder) error {
	database, err := st.Get(question.IDDatabase)
	if err != nil {
		return err
	}
	// Projects without a database skip the whole section; the table-of-
	// contents anchor stays (fixed 15-anchor contract).
	if database == "None" {
		return nil
	}
	orm, err := st.Get(question.IDORM)
	if err != nil {
		return err
	}

	b.WriteString("## Database\n\n")
	fmt.Fprintf(b, "Database: **%s**\n", database)
	if orm != "None" {
		fmt.Fprintf(b, "ORM: **%s**\n", orm)
	}
	b.WriteString("\n")
	b.WriteString(`- Schema changes ship as reviewed, committed migrations — never manual edits.
- Constraints live in the database, not only in application code.
- No queries in UI code; data access goes through the data layer.
`)
	b.WriteString("\n")
	return nil
}

func sectionAPIDesign(st *answers.Store, b *strings.Builder) error {
	apiType, err := st.Get(question.IDAPIType)
	if err != nil {
		return err
	}

	b.WriteString("## API Design\n\n")
	fmt.Fprintf(b, "Style: **%s**\n\n", apiType)
	switch apiType {
	case "REST":
		b.WriteString(apiRESTSample)
	case "GraphQL":
		b.WriteString(apiGraphQLSample)
	case "tRPC":
		b.WriteString(apiTRPCSample)
	}
	b.WriteString("\n")
	return nil
}

func sectionNamingConventions(st *answers.Store, b *strings.Builder) error {
	naming, err := st.Get(question.IDFileNaming)
	if err != nil {
		return err
	}

	b.WriteString("## Naming Conventions\n\n")
	fmt.Fprintf(b, "Component files: **%s**\n\n", naming)
	b.WriteString(`- Functions and variables: camelCase. Types and components: PascalCase.
- Constants that are truly constant: UPPER_SNAKE_CASE.
- Booleans read as predicates: isLoading, hasAccess, canEdit.
- Name things for what they are, not how they are implemented.
`)
	b.WriteString("\n")
	return nil
}

func sectionCodePatterns(st *answers.Store, b *strings.Builder) error {
	b.WriteString("## Code Patterns\n\n")
	b.WriteString(codePatternsBody)
	b.WriteString("\n")
	return nil
}

func sectionSecurity(st *answers.Store, b *strings.Builder) error {
	b.WriteString("## Security\n\n")
	b.WriteString(securityBody)
	b.WriteString("\n")
	return nil
}

func sectionPerformance(st *answers.Store, b *strings.Builder) error {
	b.WriteString("## Performance\n\n")
	b.WriteString(performanceBody)
	b.WriteString("\n")
	return nil
}

func sectionAccessibility(st *answers.Store, b *strings.Builder) error {
	b.WriteString("## Accessibility\n\n")
	b.WriteString(accessibilityBody)
	b.WriteString("\n")
	return nil
}

func sectionDeployment(st *answers.Store, b *strings.Builder) error {
	deployment, err := st.Get(question.IDDeployment)
	if err != nil {
		return err
	}

	b.WriteString("## Deployment\n\n")
	fmt.Fprintf(b, "Target: **%s**\n\n", deployment)
	b.WriteString(`- Every merge to main must be deployable; feature work hides behind flags.
- Configuration comes from the environment; builds are environment-agnostic.
- Rollback is a first-class path: keep the previous release one command away.
`)
	b.WriteString("\n")
	return nil
}

// Package wizard runs the interactive interview that fills the answer store.
//
// Each prompt blocks on one line of input. Invalid single-choice input is
// re-prompted without limit; this assumes an interactive human operator and
// must not be reused in headless contexts (use a preloaded answers file
// there instead).
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agusx1211/rulebook/internal/answers"
	"github.com/agusx1211/rulebook/internal/debug"
	"github.com/agusx1211/rulebook/internal/question"
	"github.com/agusx1211/rulebook/internal/theme"
)

// Asker reads answers line by line from in and writes prompts to out.
type Asker struct {
	in  *bufio.Reader
	out io.Writer

	// Defaults overrides per-question defaults (e.g. from stack detection).
	// For choice questions the value pre-selects the matching option; for
	// text questions it replaces the configured default.
	Defaults map[string]string
}

// New returns an Asker over the given streams.
func New(in io.Reader, out io.Writer) *Asker {
	return &Asker{in: bufio.NewReader(in), out: out}
}

// Run asks every question of the flow in order and returns the populated
// store. An input error (EOF, closed terminal) aborts the run.
func (a *Asker) Run(flow []question.Question) (*answers.Store, error) {
	if err := question.Validate(flow); err != nil {
		return nil, fmt.Errorf("invalid question flow: %w", err)
	}

	st := answers.New()
	for _, q := range flow {
		value, err := a.Ask(q)
		if err != nil {
			return nil, err
		}
		if err := st.Set(q.ID, value); err != nil {
			return nil, err
		}
		debug.LogKV("wizard", "answer recorded", "id", q.ID, "value", value)
	}
	return st, nil
}

// Ask dispatches on the question kind and returns the confirmed value.
func (a *Asker) Ask(q question.Question) (string, error) {
	switch q.Kind {
	case question.KindChoice:
		return a.AskChoice(q)
	case question.KindText:
		return a.AskText(q)
	case question.KindYesNo:
		def := strings.EqualFold(q.Default, "y") || strings.EqualFold(q.Default, "yes")
		yes, err := a.AskYesNo(q.Prompt, def)
		if err != nil {
			return "", err
		}
		if yes {
			return "yes", nil
		}
		return "no", nil
	default:
		return "", fmt.Errorf("unknown question kind %d for %q", q.Kind, q.ID)
	}
}

// AskChoice shows the numbered option list and re-prompts until the operator
// enters an integer in [1, len(options)]. Returns the chosen option verbatim.
func (a *Asker) AskChoice(q question.Question) (string, error) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, theme.StyleTitle.Render(q.Prompt))
	preselect := a.preselectIndex(q)
	for i, opt := range q.Options {
		marker := " "
		if i == preselect {
			marker = theme.StyleDim.Render("*")
		}
		fmt.Fprintf(a.out, "  %2d) %s %s\n", i+1, theme.StyleOption.Render(opt), marker)
	}

	for {
		if preselect >= 0 {
			fmt.Fprintf(a.out, "Select [1-%d] (default %d): ", len(q.Options), preselect+1)
		} else {
			fmt.Fprintf(a.out, "Select [1-%d]: ", len(q.Options))
		}
		line, err := a.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" && preselect >= 0 {
			return q.Options[preselect], nil
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintln(a.out, theme.Error(fmt.Sprintf("Please enter a number between 1 and %d.", len(q.Options))))
			continue
		}
		return q.Options[n-1], nil
	}
}

// AskText prompts for a free-form line. Empty input yields the default when
// one is configured; otherwise the raw line is returned with only the
// trailing newline removed.
func (a *Asker) AskText(q question.Question) (string, error) {
	def := q.Default
	if override, ok := a.Defaults[q.ID]; ok && override != "" {
		def = override
	}

	fmt.Fprintln(a.out)
	if def != "" {
		fmt.Fprintf(a.out, "%s [%s]: ", theme.StyleTitle.Render(q.Prompt), theme.StyleDim.Render(def))
	} else {
		fmt.Fprintf(a.out, "%s: ", theme.StyleTitle.Render(q.Prompt))
	}

	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	if line == "" && def != "" {
		return def, nil
	}
	return line, nil
}

// AskYesNo prompts until it reads y/yes/n/no (case-insensitive) or an empty
// line, which resolves to the default polarity.
func (a *Asker) AskYesNo(prompt string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	for {
		fmt.Fprintf(a.out, "%s %s: ", theme.StyleTitle.Render(prompt), theme.StyleDim.Render(suffix))
		line, err := a.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(a.out, theme.Error("Please answer y or n."))
	}
}

// preselectIndex resolves a detection-provided default to an option index,
// or -1 when none applies.
func (a *Asker) preselectIndex(q question.Question) int {
	want, ok := a.Defaults[q.ID]
	if !ok || want == "" {
		return -1
	}
	for i, opt := range q.Options {
		if strings.EqualFold(opt, want) {
			return i
		}
	}
	return -1
}

// readLine reads one line, stripping the trailing newline but nothing else.
func (a *Asker) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Final line without newline still counts as input.
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agusx1211/rulebook/internal/answers"
	"github.com/agusx1211/rulebook/internal/config"
	"github.com/agusx1211/rulebook/internal/debug"
	"github.com/agusx1211/rulebook/internal/detect"
	"github.com/agusx1211/rulebook/internal/question"
	"github.com/agusx1211/rulebook/internal/render"
	"github.com/agusx1211/rulebook/internal/store"
	"github.com/agusx1211/rulebook/internal/theme"
	"github.com/agusx1211/rulebook/internal/wizard"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Interview the project stack and write RULEBOOK.md",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	addGenerateFlags(rootCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", "", "Project directory (default: current directory)")
	cmd.Flags().String("answers", "", "Answer file (YAML) to use instead of the interactive wizard")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing rulebook without asking")
	cmd.Flags().Bool("save-answers", true, "Snapshot answers to .rulebook/answers.yaml")
	cmd.Flags().Bool("print", false, "Print the generated rulebook to the terminal")
}

// generateOptions carries one generate run's inputs. The streams are split
// out so tests can drive the confirmation and interview over pipes.
type generateOptions struct {
	dir         string
	answersFile string
	force       bool
	saveAnswers bool
	printDoc    bool

	in  io.Reader
	out io.Writer
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := generateOptions{
		in:  os.Stdin,
		out: os.Stdout,
	}
	opts.dir, _ = cmd.Flags().GetString("dir")
	opts.answersFile, _ = cmd.Flags().GetString("answers")
	opts.force, _ = cmd.Flags().GetBool("force")
	opts.saveAnswers, _ = cmd.Flags().GetBool("save-answers")
	opts.printDoc, _ = cmd.Flags().GetBool("print")

	if opts.answersFile == "" && !isatty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("standard input is not a terminal; pass --answers <file> for non-interactive runs")
	}
	return generate(opts)
}

func generate(opts generateOptions) error {
	s, err := openStore(opts.dir)
	if err != nil {
		return err
	}

	interactive := opts.answersFile == ""
	asker := wizard.New(opts.in, opts.out)

	// A pre-existing rulebook is backed up before it gets replaced, but
	// only once the user has agreed to replace it.
	if s.RulebookExists() && !opts.force {
		if !interactive {
			return fmt.Errorf("%s already exists; pass --force to overwrite", s.RulebookPath())
		}
		fmt.Fprintln(opts.out, theme.Warn(fmt.Sprintf("A rulebook already exists at %s", s.RulebookPath())))
		overwrite, err := asker.AskYesNo("Overwrite it? (a backup will be kept)", false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(opts.out, theme.Info("Keeping the existing rulebook. Nothing was changed."))
			return nil
		}
	}
	if s.RulebookExists() {
		if err := s.BackupRulebook(); err != nil {
			return fmt.Errorf("backing up existing rulebook: %w", err)
		}
		fmt.Fprintln(opts.out, theme.Info(fmt.Sprintf("Existing rulebook backed up to %s", s.BackupPath())))
	}

	flow := question.Flow(projectRoot(s))

	var st *answers.Store
	if interactive {
		st, err = runInterview(asker, flow, projectRoot(s), opts.out)
	} else {
		st, err = loadAnswerFile(opts.answersFile, flow)
	}
	if err != nil {
		return err
	}

	doc, err := render.Render(st, time.Now())
	if err != nil {
		return fmt.Errorf("rendering rulebook: %w", err)
	}

	if err := s.WriteRulebook(doc); err != nil {
		return fmt.Errorf("writing rulebook: %w", err)
	}
	if opts.saveAnswers {
		if err := s.SaveAnswers(st.Snapshot()); err != nil {
			return fmt.Errorf("saving answers snapshot: %w", err)
		}
	}

	fmt.Fprintln(opts.out, theme.Success(fmt.Sprintf("Rulebook written to %s", s.RulebookPath())))
	fmt.Fprintln(opts.out, theme.Info("Preview it with `rulebook preview`."))

	if opts.printDoc {
		return printRulebook(doc)
	}
	return nil
}

// runInterview scans the project for stack hints, merges global preferences,
// and runs the full question flow.
func runInterview(asker *wizard.Asker, flow []question.Question, projectDir string, out io.Writer) (*answers.Store, error) {
	defaults := map[string]string{}

	cfg, err := config.Load()
	if err != nil {
		debug.Logf("cli", "loading global config: %v", err)
	} else {
		defaults = cfg.WizardDefaults()
	}

	detection, err := detect.Scan(projectDir)
	if err != nil {
		debug.Logf("cli", "stack detection failed: %v", err)
	} else if !detection.Empty() {
		fmt.Fprintln(out, theme.Info("Detected parts of your stack; matching options are pre-selected."))
		for id, v := range detection.Defaults() {
			defaults[id] = v
		}
	}

	asker.Defaults = defaults
	return asker.Run(flow)
}

// loadAnswerFile reads a YAML answer map and validates it against the flow.
func loadAnswerFile(path string, flow []question.Question) (*answers.Store, error) {
	m, err := store.LoadAnswers(path)
	if err != nil {
		return nil, fmt.Errorf("loading answers from %s: %w", path, err)
	}
	ids := question.IDs(flow)
	for _, id := range ids {
		if _, ok := m[id]; !ok {
			return nil, fmt.Errorf("answer file %s is missing %q", path, id)
		}
	}
	return answers.FromMap(m, ids), nil
}

// printRulebook renders the markdown for the terminal when attached to one,
// raw otherwise.
func printRulebook(doc string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(doc)
		return nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(doc)
		return nil
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return nil
	}
	fmt.Print(out)
	return nil
}

// projectRoot returns the project directory a store is rooted under.
func projectRoot(s *store.Store) string {
	return filepath.Dir(s.Root())
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agusx1211/rulebook/internal/buildinfo"
	"github.com/agusx1211/rulebook/internal/debug"
)

const (
	// ANSI color codes
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"

	// Combined styles
	styleBoldCyan   = "\033[1;36m"
	styleBoldGreen  = "\033[1;32m"
	styleBoldYellow = "\033[1;33m"
	styleBoldWhite  = "\033[1;37m"
)

var rootCmd = &cobra.Command{
	Use:   "rulebook",
	Short: "Project rulebook generator",
	Long: colorBold + `
              _      _                 _
   _ __ _   _| | ___| |__   ___   ___ | | __
  | '__| | | | |/ _ \ '_ \ / _ \ / _ \| |/ /
  | |  | |_| | |  __/ |_) | (_) | (_) |   <
  |_|   \__,_|_|\___|_.__/ \___/ \___/|_|\_\` + colorReset + `

  ` + styleBoldCyan + `Project rulebook generator` + colorReset + ` v` + buildinfo.Current().Version + `

  Interview your project's stack and write a RULEBOOK.md of coding
  conventions, architecture guidelines, and recommended review agents
  that AI assistants and humans can follow.

` + colorBold + `Getting Started:` + colorReset + `
  rulebook generate               Run the interview and write the rulebook
  rulebook detect                 Show what the stack scanner found
  rulebook preview                Serve the rulebook with live reload
  rulebook agents                 List the agent catalog

` + colorBold + `More Info:` + colorReset + `
  https://github.com/agusx1211/rulebook`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation runs the generator, matching what most users
		// want from a one-shot tool.
		return runGenerate(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.Version = buildinfo.Current().Short()
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose debug logging to ~/.rulebook/debug/")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		debugFlag, _ := cmd.Flags().GetBool("debug")
		if !debugFlag && !debug.ShouldEnableFromEnv() {
			return nil
		}
		logPath, err := debug.Init()
		if err != nil {
			return fmt.Errorf("initializing debug logger: %w", err)
		}
		fmt.Fprintf(os.Stderr, "%s[debug]%s logging to %s\n", colorDim, colorReset, logPath)
		bi := buildinfo.Current()
		debug.LogKV("cli", "rulebook starting",
			"version", bi.Version,
			"commit", bi.CommitHash,
			"build_date", bi.BuildDate,
			"pid", os.Getpid(),
			"command", cmd.Name(),
			"args", args,
		)
		return nil
	}
}

// Execute runs the root command.
func Execute() {
	defer debug.Close()
	if err := rootCmd.Execute(); err != nil {
		debug.Logf("cli", "exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "%sError: %s%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	debug.Log("cli", "exit success")
}

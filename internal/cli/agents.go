package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agusx1211/rulebook/internal/agentcat"
	"github.com/agusx1211/rulebook/internal/tui"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Browse the review agent catalog",
	RunE:  runAgentsList,
}

var agentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog agents",
	Args:  cobra.NoArgs,
	RunE:  runAgentsList,
}

var agentsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the full persona document for an agent",
	Args:  cobra.ExactArgs(1),
	RunE:  runAgentsShow,
}

var agentsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse agent documents in an interactive viewer",
	Args:  cobra.NoArgs,
	RunE:  runAgentsBrowse,
}

func init() {
	agentsCmd.AddCommand(agentsListCmd)
	agentsCmd.AddCommand(agentsShowCmd)
	agentsCmd.AddCommand(agentsBrowseCmd)
	rootCmd.AddCommand(agentsCmd)
}

func runAgentsList(cmd *cobra.Command, args []string) error {
	core := agentcat.Core()

	rows := make([][]string, 0, len(agentcat.Names()))
	for _, name := range agentcat.Names() {
		info, _ := agentcat.InfoFor(name)
		kind := "specialized"
		if slices.Contains(core, name) {
			kind = styleBoldGreen + "core" + colorReset
		}
		trigger := info.Trigger
		if trigger == "" {
			trigger = "-"
		}
		rows = append(rows, []string{
			name,
			kind,
			truncate(info.Summary, 56),
			truncate(trigger, 40),
		})
	}

	printHeader("Agent Catalog")
	printTable([]string{"NAME", "KIND", "SUMMARY", "RECOMMENDED WHEN"}, rows)
	fmt.Println()
	printField("Agents", fmt.Sprintf("%d", len(rows)))
	fmt.Println(colorDim + "  Run `rulebook agents show <name>` for the full persona." + colorReset)
	return nil
}

func runAgentsShow(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(args[0]))
	doc, err := agentcat.Doc(name)
	if err != nil {
		return fmt.Errorf("unknown agent %q (run `rulebook agents list`)", name)
	}

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

func runAgentsBrowse(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("agents browse needs a terminal; use `rulebook agents show <name>` instead")
	}
	return tui.RunCatalog()
}

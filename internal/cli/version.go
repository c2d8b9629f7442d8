package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agusx1211/rulebook/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		bi := buildinfo.Current()
		fmt.Printf("rulebook %s\n", bi.Short())
		printField("Commit", bi.CommitHash)
		printField("Built", bi.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agusx1211/rulebook/internal/detect"
	"github.com/agusx1211/rulebook/internal/question"
	"github.com/agusx1211/rulebook/internal/theme"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show what the stack scanner finds in the project",
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringP("dir", "d", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	s, err := openStore(dir)
	if err != nil {
		return err
	}

	detection, err := detect.Scan(projectRoot(s))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", projectRoot(s), err)
	}
	if detection.Empty() {
		fmt.Println(theme.Info("Nothing detected. The wizard will start from blank defaults."))
		return nil
	}

	labels := map[string]string{
		question.IDFramework:  "Framework",
		question.IDLanguage:   "Language",
		question.IDStateMgmt:  "State",
		question.IDStyling:    "Styling",
		question.IDTesting:    "Testing",
		question.IDDatabase:   "Database",
		question.IDORM:        "ORM",
		question.IDAPIType:    "API",
		question.IDDeployment: "Deployment",
	}

	printHeader("Detected Stack")
	for _, q := range question.Flow(projectRoot(s)) {
		v, ok := detection.Defaults()[q.ID]
		if !ok {
			continue
		}
		printField(labels[q.ID], v)
	}
	fmt.Println()
	fmt.Println(colorDim + "  These pre-select the matching wizard options in `rulebook generate`." + colorReset)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"treesummary.dev/pkg/treesummary/internal/domain"
	m "treesummary.dev/pkg/treesummary/internal/model"
)

const analyzeLongDescription = `Submit the buckets of a plan file for analysis and print the results.

A plan lists buckets and their files:

  buckets:
    - name: Frontend
      files: [src/App.js, src/pages/Home.js]

The rendered results are saved as markdown in the output directory; pass
--output "" to skip saving.`

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <plan.yaml>",
		Short: "Analyze the buckets of a plan file",
		Long:  analyzeLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Plan:   m.Path(args[0]),
				Output: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

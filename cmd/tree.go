package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"treesummary.dev/pkg/treesummary/internal/domain"
)

const treeLongDescription = `Print the file tree the board offers for dragging.

Roots default to the current directory. Files are filtered by the saved
extension and ignore settings; --demo shows a built-in sample project.`

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [roots...]",
		Short: "Print the file tree",
		Long:  treeLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Tree(cmd.Context(), treeArgs(cmd, args))
		},
	}

	cmd.Flags().Bool(demoFlagName, false, "use the built-in sample project")

	return cmd
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func treeArgs(cmd *cobra.Command, args []string) domain.TreeArgs {
	demo, _ := cmd.Flags().GetBool(demoFlagName)

	return domain.TreeArgs{
		Roots:    parseRoots(args),
		Demo:     demo,
		Parallel: viper.GetInt(treeParallelKey),
	}
}

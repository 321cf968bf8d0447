package cmd

import (
	"github.com/spf13/cobra"

	"treesummary.dev/pkg/treesummary/internal/domain"
)

const boardLongDescription = `Open the interactive bucket board.

The file tree is on the left and the buckets on the right. Pick a file up
with space and drop it with enter, either onto a bucket or onto the open
board to start a new one. Press "a" to analyze the buckets and "s" to edit
the analysis settings. The board needs a terminal.`

// boardCmd represents the board command.
var boardCmd = newBoardCmd()

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [roots...]",
		Short: "Group files into buckets interactively",
		Long:  boardLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Board(cmd.Context(), domain.BoardArgs{TreeArgs: treeArgs(cmd, args)})
		},
	}

	cmd.Flags().Bool(demoFlagName, false, "use the built-in sample project")

	return cmd
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

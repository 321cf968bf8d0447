package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the treesummary build version, the Go version it was built with and the analysis service it talks to.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, _ := debug.ReadBuildInfo()

			return writeVersion(cmd.OutOrStdout(), info, apiURLFlag)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints one tab separated line per field. Missing build info
// reports an unknown version.
func writeVersion(w io.Writer, info *debug.BuildInfo, apiURL string) error {
	version, goVersion := unknownVersion, unknownVersion
	if info != nil {
		goVersion = info.GoVersion

		if info.Main.Version != "" {
			version = info.Main.Version
		}
	}

	if apiURL == "" {
		apiURL = defaultAPIBaseURL
	}

	_, err := fmt.Fprintf(w, "treesummary\t%s\ngo\t%s\nanalysis api\t%s\n", version, goVersion, apiURL)

	return err
}

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"treesummary.dev/pkg/treesummary/internal/domain"
)

const (
	extensionsFlagName           = "extensions"
	ignoreFlagName               = "ignore"
	intervalFlagName             = "interval"
	finalSummaryFlagName         = "final-summary"
	modernisationSummaryFlagName = "modernisation-summary"
)

var errNoSettingsChanged = errors.New("no settings given, see --help")

// settingsCmd represents the settings command.
var settingsCmd = newSettingsCmd()

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the analysis settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.ShowSettings(cmd.Context())
		},
	}

	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd())

	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the analysis settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.ShowSettings(cmd.Context())
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the analysis settings",
		Long: `Change the analysis settings and print what changed.

List values are comma separated, e.g. --extensions js,py,go. An interval
that is not a positive number resets to 10.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, err := settingsUpdate(cmd)
			if err != nil {
				return err
			}

			return workflow.UpdateSettings(cmd.Context(), update)
		},
	}

	cmd.Flags().String(extensionsFlagName, "", "file extensions offered in the tree")
	cmd.Flags().String(ignoreFlagName, "", "path fragments hidden from the tree")
	cmd.Flags().String(intervalFlagName, "", "files per bucket supersummary")
	cmd.Flags().Bool(finalSummaryFlagName, true, "generate a final summary")
	cmd.Flags().Bool(modernisationSummaryFlagName, true, "generate a modernisation summary")

	return cmd
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

// settingsUpdate collects the flags that were set on the command line.
func settingsUpdate(cmd *cobra.Command) (domain.SettingsUpdate, error) {
	var update domain.SettingsUpdate

	flags := cmd.Flags()
	changed := false

	for _, name := range []string{extensionsFlagName, ignoreFlagName, intervalFlagName} {
		if !flags.Changed(name) {
			continue
		}

		value, err := flags.GetString(name)
		if err != nil {
			return update, err
		}

		switch name {
		case extensionsFlagName:
			update.FileExtensions = &value
		case ignoreFlagName:
			update.IgnorePaths = &value
		case intervalFlagName:
			update.SupersummaryInterval = &value
		}

		changed = true
	}

	for _, name := range []string{finalSummaryFlagName, modernisationSummaryFlagName} {
		if !flags.Changed(name) {
			continue
		}

		value, err := flags.GetBool(name)
		if err != nil {
			return update, err
		}

		if name == finalSummaryFlagName {
			update.GenerateFinalSummary = &value
		} else {
			update.GenerateModernisationSummary = &value
		}

		changed = true
	}

	if !changed {
		return update, errNoSettingsChanged
	}

	return update, nil
}

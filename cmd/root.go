// Package cmd provides the root command and CLI setup for treesummary.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"treesummary.dev/pkg/treesummary/internal/adapter"
	"treesummary.dev/pkg/treesummary/internal/controller"
	"treesummary.dev/pkg/treesummary/internal/domain"
	m "treesummary.dev/pkg/treesummary/internal/model"
)

var ui controller.UI
var workflow domain.Workflow

// outputDirFlag is a root-level flag for the directory reports are saved to.
var outputDirFlag string

var apiURLFlag string
var timeoutFlag int64
var settingsFileFlag string
var parallelFlag int
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

const rootLongDescription = `treesummary groups the files of a project into named buckets and sends
them to an analysis service, which answers with per-file summaries, bucket
supersummaries and optional final and modernisation summaries.

Run "treesummary board" to drag files into buckets interactively, or
"treesummary analyze plan.yaml" to submit a prepared grouping.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "treesummary",
		Short:        "Group files into buckets and summarize them",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))

			workflow = newWorkflow(ui)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newWorkflow wires the adapters from the current configuration.
func newWorkflow(display controller.UI) domain.Workflow {
	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewFileSettingsStore(m.Path(viper.GetString(settingsFileKey))),
		adapter.NewReportStore(),
		adapter.NewYAMLPlanStore(),
		adapter.NewHTTPAnalysisAPI(viper.GetString(apiBaseURLKey), apiTimeout()),
		display,
	)
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputDirFlag, outputFlagName, "o", viper.GetString(outputFlagName), "directory analysis reports are saved to")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringVar(&apiURLFlag, apiURLFlagName, viper.GetString(apiBaseURLKey), "base URL of the analysis service")
	bindFlagToConfig(flags.Lookup(apiURLFlagName), apiBaseURLKey)

	flags.Int64Var(&timeoutFlag, timeoutFlagName, viper.GetInt64(apiTimeoutKey), "analysis request timeout in seconds")
	bindFlagToConfig(flags.Lookup(timeoutFlagName), apiTimeoutKey)

	flags.StringVar(&settingsFileFlag, settingsFileFlagName, viper.GetString(settingsFileKey), "file the analysis settings are stored in")
	bindFlagToConfig(flags.Lookup(settingsFileFlagName), settingsFileKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(treeParallelKey), "number of roots scanned in parallel")
	bindFlagToConfig(flags.Lookup(parallelFlagName), treeParallelKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug records to the log file")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parseRoots(args []string) []m.Path {
	roots := make([]m.Path, 0, len(args))
	for _, arg := range args {
		roots = append(roots, m.Path(arg))
	}

	return roots
}

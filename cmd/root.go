// Package cmd provides the root command and CLI setup for sabot.
package cmd

import (
	"fmt"
	"os"

	"github.com/sabot-dev/sabot/internal/adapter"
	"github.com/sabot-dev/sabot/internal/controller"
	"github.com/sabot-dev/sabot/internal/domain"
	m "github.com/sabot-dev/sabot/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var fsAdapter adapter.SourceFSAdapter
var testAdapter adapter.TestRunnerAdapter
var reportStore adapter.ReportStore
var mutator domain.Mutator
var orchestrator domain.Orchestrator
var mutagen domain.Mutagen
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// logFileFlag overrides the rotating log file location.
var logFileFlag string

// verboseFlag enables debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	testAdapter = adapter.NewLocalTestRunnerAdapter()
	reportStore = adapter.NewReportStore()
	mutator = domain.NewMutator(fsAdapter)
	orchestrator = domain.NewOrchestrator(mutator, testAdapter)
	mutagen = domain.NewMutagen(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		orchestrator,
		mutagen,
	)
}

const rootLongDescription = `Sabot is a mutation testing tool that assesses the quality of a test suite
by introducing small textual defects (mutations) into a source file, one at a
time, and verifying that the tests catch them. The target file is always
restored to its original content, even when a test run crashes.`

const runLongDescription = `Run mutation testing against a single source file.

Mutations are generated from a fixed operator catalog (arithmetic, relational,
logical, unary, assignment, boolean literal, numeric and string literal),
applied strictly one at a time, and judged killed or survived by the test
framework's results.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sabot",
		Short: "Mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for mutation testing reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("log-file"), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
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
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseMutationTypes converts --type flag values into model types. Validation
// happens in the domain layer, which owns the closed type set.
func parseMutationTypes(values []string) []m.MutationType {
	types := make([]m.MutationType, 0, len(values))
	for _, value := range values {
		types = append(types, m.MutationType(value))
	}

	return types
}

package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sabot-dev/sabot/internal/domain"
	m "github.com/sabot-dev/sabot/internal/model"
)

var runFileFlag string
var runTestPathFlag string
var runPatternFlag string
var runFrameworkFlag string
var runTimeoutFlag time.Duration
var runTypeFlags []string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run mutation testing against a source file",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := workflow.Run(context.Background(), domain.RunArgs{
				Framework:     viper.GetString(frameworkConfigKey),
				FilePath:      m.Path(runFileFlag),
				TestPath:      m.Path(runTestPathFlag),
				Pattern:       runPatternFlag,
				Timeout:       viper.GetDuration(timeoutConfigKey),
				MutationTypes: parseMutationTypes(runTypeFlags),
				Reports:       m.Path(viper.GetString(outputFlagName)),
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runFileFlag, fileFlagName, "f", "", "source file to mutate (required)")
	cobra.CheckErr(cmd.MarkFlagRequired(fileFlagName))

	cmd.Flags().StringVar(&runTestPathFlag, testPathFlagName, "", "test file or package directory (default: auto-detected companion test file)")
	cmd.Flags().StringVar(&runPatternFlag, patternFlagName, "", "restrict the test run to tests matching this pattern")

	cmd.Flags().StringVar(&runFrameworkFlag, frameworkFlagName, viper.GetString(frameworkConfigKey), "test framework to invoke")
	bindFlagToConfig(cmd.Flags().Lookup(frameworkFlagName), frameworkConfigKey)

	cmd.Flags().DurationVar(&runTimeoutFlag, timeoutFlagName, viper.GetDuration(timeoutConfigKey), "timeout for a single test suite invocation")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.Flags().StringArrayVarP(&runTypeFlags, typeFlagName, "t", nil, "restrict to mutation types (can be repeated)")
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sabot-dev/sabot/internal/domain"
	m "github.com/sabot-dev/sabot/internal/model"
)

var listFileFlag string
var listTypeFlags []string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applicable mutations for a source file",
		Long:  "Show how many mutations the operator catalog would generate for a source file, grouped by mutation type, without running any tests.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Estimate(context.Background(), domain.EstimateArgs{
				FilePath:      m.Path(listFileFlag),
				MutationTypes: parseMutationTypes(listTypeFlags),
			})
		},
	}

	cmd.Flags().StringVarP(&listFileFlag, fileFlagName, "f", "", "source file to scan (required)")
	cobra.CheckErr(cmd.MarkFlagRequired(fileFlagName))
	cmd.Flags().StringArrayVarP(&listTypeFlags, typeFlagName, "t", nil, "restrict to mutation types (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

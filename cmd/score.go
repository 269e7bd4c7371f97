package cmd

import (
	"context"

	"github.com/sabot-dev/sabot/internal/domain"
	m "github.com/sabot-dev/sabot/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scoreCmd represents the score command.
var scoreCmd = newScoreCmd()

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Recompute the mutation score over stored reports",
		Long:  "Recompute the aggregate mutation score across every report in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			_, err := workflow.Score(context.Background(), domain.ScoreArgs{Reports: reportsPath})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

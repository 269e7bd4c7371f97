package controller

import (
	"context"
	"fmt"
	"time"

	m "github.com/sabot-dev/sabot/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text written to the cobra command's
// output. It is used when stdout is not a terminal.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(context.Context) {}

// DisplayEstimation prints the per-type mutation counts.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, mutations []m.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderEstimationTable(mutations))

	return nil
}

// DisplayStartingMutation prints a line for the mutation about to be tested.
func (s *SimpleUI) DisplayStartingMutation(ctx context.Context, index, total int, mutation m.Mutation) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d/%d] %s:%d %s\n", index, total, mutation.File, mutation.Line, mutation.Description)
}

// DisplayCompletedMutation prints the outcome of one evaluated mutation.
func (s *SimpleUI) DisplayCompletedMutation(ctx context.Context, result m.MutationResult) {
	if ctx.Err() != nil {
		return
	}

	if result.Killed {
		s.printf("  ✓ mutation %d %s by %s (%s)\n", result.ID, killedLabel, firstKiller(result), result.Duration.Round(time.Millisecond))
		return
	}

	s.printf("  ✗ mutation %d %s (%s)\n", result.ID, survivedLabel, result.Duration.Round(time.Millisecond))
}

// DisplayReport prints the full mutation report as a table.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.MutationReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReportTable(report))

	return nil
}

// DisplayMutationScore prints the final mutation score.
func (s *SimpleUI) DisplayMutationScore(ctx context.Context, score float64) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Mutation score: %.2f%%\n", score)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

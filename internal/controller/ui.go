// Package controller provides output controllers for displaying mutation
// testing progress and results.
package controller

import (
	"context"
	"io"
	"os"

	m "github.com/sabot-dev/sabot/internal/model"
	"github.com/spf13/cobra"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeTest
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithTestMode sets the UI to test execution mode with the expected number of
// mutations.
func WithTestMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTest
		c.total = total
	}
}

// UI defines the interface for displaying mutation testing output.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayEstimation(ctx context.Context, mutations []m.Mutation) error
	DisplayStartingMutation(ctx context.Context, index, total int, mutation m.Mutation)
	DisplayCompletedMutation(ctx context.Context, result m.MutationResult)
	DisplayReport(ctx context.Context, report m.MutationReport) error
	DisplayMutationScore(ctx context.Context, score float64)
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns the Bubble Tea TUI, otherwise the plain text SimpleUI.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the given writer is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

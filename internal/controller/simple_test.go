package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	m "github.com/sabot-dev/sabot/internal/model"
	"github.com/spf13/cobra"
)

func newCapturedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buffer bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buffer)

	return NewSimpleUI(cmd), &buffer
}

func TestSimpleUI_DisplayStartingMutation(t *testing.T) {
	ui, buffer := newCapturedSimpleUI()

	mutation := m.Mutation{
		ID:          3,
		File:        "calc.js",
		Line:        7,
		Description: "Replace arithmetic operator + with -",
	}

	ui.DisplayStartingMutation(context.Background(), 3, 10, mutation)

	got := buffer.String()
	if !strings.Contains(got, "[3/10]") || !strings.Contains(got, "calc.js:7") {
		t.Errorf("unexpected progress line: %q", got)
	}

	if !strings.Contains(got, "Replace arithmetic operator + with -") {
		t.Errorf("expected the mutation description: %q", got)
	}
}

func TestSimpleUI_DisplayCompletedMutation(t *testing.T) {
	ui, buffer := newCapturedSimpleUI()

	ui.DisplayCompletedMutation(context.Background(), m.MutationResult{
		ID:       1,
		Killed:   true,
		KilledBy: []string{"calc.TestAdd"},
		Duration: 1503 * time.Millisecond,
	})

	killed := buffer.String()
	if !strings.Contains(killed, "killed by calc.TestAdd") || !strings.Contains(killed, "1.503s") {
		t.Errorf("unexpected killed line: %q", killed)
	}

	buffer.Reset()

	ui.DisplayCompletedMutation(context.Background(), m.MutationResult{ID: 2, Duration: 20 * time.Millisecond})

	survived := buffer.String()
	if !strings.Contains(survived, "survived") || !strings.Contains(survived, "20ms") {
		t.Errorf("unexpected survived line: %q", survived)
	}
}

func TestSimpleUI_DisplayReportAndScore(t *testing.T) {
	ui, buffer := newCapturedSimpleUI()

	report := m.MutationReport{
		ReportID:       "11111111-2222-3333-4444-555555555555",
		TotalMutations: 1,
		Mutations:      []m.MutationResult{{ID: 1, Line: 1, Original: "+", Mutated: "-"}},
		Timestamp:      time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}

	if err := ui.DisplayReport(context.Background(), report); err != nil {
		t.Fatalf("display report: %v", err)
	}

	if !strings.Contains(buffer.String(), report.ReportID) {
		t.Errorf("expected the report id in the output: %q", buffer.String())
	}

	buffer.Reset()

	ui.DisplayMutationScore(context.Background(), 62.5)

	if got := buffer.String(); got != "Mutation score: 62.50%\n" {
		t.Errorf("unexpected score line: %q", got)
	}
}

func TestSimpleUI_CancelledContextSilencesOutput(t *testing.T) {
	ui, buffer := newCapturedSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ui.Start(ctx); err == nil {
		t.Error("expected Start to report the cancelled context")
	}

	ui.DisplayStartingMutation(ctx, 1, 1, m.Mutation{})
	ui.DisplayCompletedMutation(ctx, m.MutationResult{})
	ui.DisplayMutationScore(ctx, 50)

	if err := ui.DisplayReport(ctx, m.MutationReport{}); err == nil {
		t.Error("expected DisplayReport to report the cancelled context")
	}

	if buffer.Len() != 0 {
		t.Errorf("expected no output after cancellation, got %q", buffer.String())
	}
}

func TestNewUI_SelectsImplementation(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Error("expected the plain text UI without a TTY")
	}

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Error("expected the Bubble Tea UI with a TTY")
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a plain buffer is not a terminal")
	}
}

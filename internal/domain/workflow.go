package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sabot-dev/sabot/internal/adapter"
	"github.com/sabot-dev/sabot/internal/controller"
	m "github.com/sabot-dev/sabot/internal/model"
)

// RunArgs describes one mutation testing run against a single target file.
type RunArgs struct {
	Framework     string
	FilePath      m.Path
	TestPath      m.Path
	Pattern       string
	Timeout       time.Duration
	MutationTypes []m.MutationType
	Reports       m.Path
}

// EstimateArgs describes a mutation estimation over a single target file.
type EstimateArgs struct {
	FilePath      m.Path
	MutationTypes []m.MutationType
}

// ViewArgs points at a directory of previously stored reports.
type ViewArgs struct {
	Reports m.Path
}

// ScoreArgs points at a directory of previously stored reports.
type ScoreArgs struct {
	Reports m.Path
}

// Workflow ties the engine together for the CLI commands: generate, evaluate
// one mutation at a time, aggregate, persist and display.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) (m.MutationReport, error)
	Estimate(ctx context.Context, args EstimateArgs) error
	View(ctx context.Context, args ViewArgs) error
	Score(ctx context.Context, args ScoreArgs) (float64, error)
}

type workflow struct {
	fsAdapter    adapter.SourceFSAdapter
	reportStore  adapter.ReportStore
	ui           controller.UI
	orchestrator Orchestrator
	mutagen      Mutagen
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	mutagen Mutagen,
) Workflow {
	return &workflow{
		fsAdapter:    fsAdapter,
		reportStore:  reportStore,
		ui:           ui,
		orchestrator: orchestrator,
		mutagen:      mutagen,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.MutationReport, error) {
	mutations, err := w.mutagen.GenerateMutations(ctx, args.FilePath, args.MutationTypes...)
	if err != nil {
		return m.MutationReport{}, fmt.Errorf("generate mutations: %w", err)
	}

	options := w.testRunOptions(ctx, args)

	if err := w.ui.Start(ctx, controller.WithTestMode(len(mutations))); err != nil {
		return m.MutationReport{}, fmt.Errorf("start ui: %w", err)
	}

	results := make([]m.MutationResult, 0, len(mutations))

	// Strictly one mutation at a time: the target file is a shared resource
	// and concurrent apply/revert would corrupt positions and reverts.
	for i, mutation := range mutations {
		w.ui.DisplayStartingMutation(ctx, i+1, len(mutations), mutation)

		result, err := w.orchestrator.EvaluateMutation(ctx, mutation, options)
		if err != nil {
			w.ui.Close(ctx)
			return m.MutationReport{}, fmt.Errorf("evaluate mutation %d: %w", mutation.ID, err)
		}

		results = append(results, result)
		w.ui.DisplayCompletedMutation(ctx, result)
	}

	report := buildReport(results)

	if args.Reports != "" {
		if err := w.reportStore.SaveReport(ctx, args.Reports, report); err != nil {
			w.ui.Close(ctx)
			return m.MutationReport{}, fmt.Errorf("save report: %w", err)
		}
	}

	if err := w.ui.DisplayReport(ctx, report); err != nil {
		w.ui.Close(ctx)
		return m.MutationReport{}, fmt.Errorf("display report: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return report, nil
}

func (w *workflow) testRunOptions(ctx context.Context, args RunArgs) m.TestRunOptions {
	testPath := args.TestPath

	if testPath == "" {
		detected, err := w.fsAdapter.DetectTestFile(ctx, args.FilePath)
		if err != nil {
			slog.Debug("test file detection failed", "file", args.FilePath, "error", err)
		} else if detected != "" {
			testPath = detected
		}
	}

	return m.TestRunOptions{
		Framework: args.Framework,
		TestPath:  testPath,
		Pattern:   args.Pattern,
		Timeout:   args.Timeout,
	}
}

func buildReport(results []m.MutationResult) m.MutationReport {
	killed := 0

	for _, result := range results {
		if result.Killed {
			killed++
		}
	}

	return m.MutationReport{
		ReportID:          uuid.NewString(),
		TotalMutations:    len(results),
		KilledMutations:   killed,
		SurvivedMutations: len(results) - killed,
		MutationScore:     CalculateMutationScore(results),
		Mutations:         results,
		Timestamp:         time.Now().UTC(),
	}
}

func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	mutations, err := w.mutagen.GenerateMutations(ctx, args.FilePath, args.MutationTypes...)
	if err != nil {
		return fmt.Errorf("generate mutations: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	if err := w.ui.DisplayEstimation(ctx, mutations); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display estimation: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no reports found in %s", args.Reports)
	}

	for _, report := range reports {
		if err := w.ui.DisplayReport(ctx, report); err != nil {
			return fmt.Errorf("display report %s: %w", report.ReportID, err)
		}
	}

	return nil
}

func (w *workflow) Score(ctx context.Context, args ScoreArgs) (float64, error) {
	reports, err := w.reportStore.LoadReports(ctx, args.Reports)
	if err != nil {
		return 0, fmt.Errorf("load reports: %w", err)
	}

	if len(reports) == 0 {
		return 0, fmt.Errorf("no reports found in %s", args.Reports)
	}

	var results []m.MutationResult
	for _, report := range reports {
		results = append(results, report.Mutations...)
	}

	score := CalculateMutationScore(results)
	w.ui.DisplayMutationScore(ctx, score)

	return score, nil
}

package domain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sabot-dev/sabot/internal/controller"
	m "github.com/sabot-dev/sabot/internal/model"
)

type fakeUI struct {
	started   bool
	closed    bool
	startMode controller.StartConfig
	starting  []m.Mutation
	completed []m.MutationResult
	reports   []m.MutationReport
	estimates [][]m.Mutation
	scores    []float64
}

func (f *fakeUI) Start(_ context.Context, options ...controller.StartOption) error {
	f.started = true
	for _, option := range options {
		option(&f.startMode)
	}

	return nil
}

func (f *fakeUI) Close(_ context.Context) { f.closed = true }

func (f *fakeUI) Wait(_ context.Context) {}

func (f *fakeUI) DisplayEstimation(_ context.Context, mutations []m.Mutation) error {
	f.estimates = append(f.estimates, mutations)
	return nil
}

func (f *fakeUI) DisplayStartingMutation(_ context.Context, _, _ int, mutation m.Mutation) {
	f.starting = append(f.starting, mutation)
}

func (f *fakeUI) DisplayCompletedMutation(_ context.Context, result m.MutationResult) {
	f.completed = append(f.completed, result)
}

func (f *fakeUI) DisplayReport(_ context.Context, report m.MutationReport) error {
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeUI) DisplayMutationScore(_ context.Context, score float64) {
	f.scores = append(f.scores, score)
}

type fakeReportStore struct {
	saved   []m.MutationReport
	reports []m.MutationReport
	loadErr error
}

func (f *fakeReportStore) SaveReport(_ context.Context, _ m.Path, report m.MutationReport) error {
	f.saved = append(f.saved, report)
	return nil
}

func (f *fakeReportStore) LoadReports(_ context.Context, _ m.Path) ([]m.MutationReport, error) {
	return f.reports, f.loadErr
}

type fakeOrchestrator struct {
	killEvery int
	evalErr   error
	evaluated []m.Mutation
	options   []m.TestRunOptions
}

func (f *fakeOrchestrator) EvaluateMutation(_ context.Context, mutation m.Mutation, options m.TestRunOptions) (m.MutationResult, error) {
	f.evaluated = append(f.evaluated, mutation)
	f.options = append(f.options, options)

	if f.evalErr != nil {
		return m.MutationResult{}, f.evalErr
	}

	result := resultForMutation(mutation)
	result.Killed = f.killEvery > 0 && mutation.ID%f.killEvery == 0
	if result.Killed {
		result.KilledBy = []string{"calc.TestAdd"}
	}

	return result, nil
}

type fakeMutagen struct {
	mutations []m.Mutation
	genErr    error
	types     []m.MutationType
}

func (f *fakeMutagen) GenerateMutations(_ context.Context, _ m.Path, mutationTypes ...m.MutationType) ([]m.Mutation, error) {
	f.types = mutationTypes
	return f.mutations, f.genErr
}

func sampleMutations(n int) []m.Mutation {
	mutations := make([]m.Mutation, 0, n)
	for i := 1; i <= n; i++ {
		mutations = append(mutations, m.Mutation{
			ID:       i,
			File:     "calc.js",
			Line:     i,
			Type:     m.MutationArithmetic,
			Original: "+",
			Mutated:  "-",
		})
	}

	return mutations
}

func newTestWorkflow(ui *fakeUI, store *fakeReportStore, orch *fakeOrchestrator, gen *fakeMutagen) Workflow {
	return NewWorkflow(newFakeFSAdapter(), store, ui, orch, gen)
}

func TestWorkflowRun_ReportInvariants(t *testing.T) {
	ui := &fakeUI{}
	store := &fakeReportStore{}
	orch := &fakeOrchestrator{killEvery: 2}
	gen := &fakeMutagen{mutations: sampleMutations(4)}

	report, err := newTestWorkflow(ui, store, orch, gen).Run(context.Background(), RunArgs{
		FilePath: "calc.js",
		Reports:  ".sabot-reports",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalMutations != 4 || len(report.Mutations) != 4 {
		t.Fatalf("expected 4 mutations in the report, got total=%d len=%d", report.TotalMutations, len(report.Mutations))
	}

	if report.KilledMutations+report.SurvivedMutations != report.TotalMutations {
		t.Errorf("killed %d + survived %d != total %d", report.KilledMutations, report.SurvivedMutations, report.TotalMutations)
	}

	if report.KilledMutations != 2 || report.MutationScore != 50 {
		t.Errorf("expected 2 kills and a score of 50, got %d and %.1f", report.KilledMutations, report.MutationScore)
	}

	if report.ReportID == "" || report.Timestamp.IsZero() {
		t.Error("report must carry an identity and a timestamp")
	}

	for i, result := range report.Mutations {
		if result.ID != i+1 {
			t.Errorf("result %d: generation order not preserved, got ID %d", i, result.ID)
		}
	}

	if len(store.saved) != 1 {
		t.Fatalf("expected the report to be persisted once, got %d saves", len(store.saved))
	}

	if len(ui.starting) != 4 || len(ui.completed) != 4 || len(ui.reports) != 1 || !ui.closed {
		t.Errorf("ui not driven as expected: %d starting, %d completed, %d reports, closed=%v",
			len(ui.starting), len(ui.completed), len(ui.reports), ui.closed)
	}
}

func TestWorkflowRun_NoPersistenceWithoutReportsDir(t *testing.T) {
	ui := &fakeUI{}
	store := &fakeReportStore{}
	orch := &fakeOrchestrator{}
	gen := &fakeMutagen{mutations: sampleMutations(1)}

	if _, err := newTestWorkflow(ui, store, orch, gen).Run(context.Background(), RunArgs{FilePath: "calc.js"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.saved) != 0 {
		t.Errorf("expected no saves without a reports directory, got %d", len(store.saved))
	}
}

func TestWorkflowRun_PassesOptionsThrough(t *testing.T) {
	ui := &fakeUI{}
	orch := &fakeOrchestrator{}
	gen := &fakeMutagen{mutations: sampleMutations(1)}

	args := RunArgs{
		Framework:     "go",
		FilePath:      "calc.js",
		TestPath:      "calc_test.js",
		Pattern:       "TestCalc",
		MutationTypes: []m.MutationType{m.MutationArithmetic},
	}

	if _, err := newTestWorkflow(ui, &fakeReportStore{}, orch, gen).Run(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gen.types) != 1 || gen.types[0] != m.MutationArithmetic {
		t.Errorf("mutation type filter not handed to the generator: %v", gen.types)
	}

	options := orch.options[0]
	if options.Framework != "go" || options.TestPath != "calc_test.js" || options.Pattern != "TestCalc" {
		t.Errorf("test run options not passed through: %+v", options)
	}
}

func TestWorkflowRun_EvaluationErrorStopsRun(t *testing.T) {
	ui := &fakeUI{}
	orch := &fakeOrchestrator{evalErr: errors.New("revert failed")}
	gen := &fakeMutagen{mutations: sampleMutations(3)}

	_, err := newTestWorkflow(ui, &fakeReportStore{}, orch, gen).Run(context.Background(), RunArgs{FilePath: "calc.js"})
	if err == nil {
		t.Fatal("expected the evaluation error to surface")
	}

	if len(orch.evaluated) != 1 {
		t.Errorf("expected the run to stop at the first failure, evaluated %d", len(orch.evaluated))
	}

	if !ui.closed {
		t.Error("ui must be closed on failure")
	}
}

func TestWorkflowEstimate_DisplaysMutations(t *testing.T) {
	ui := &fakeUI{}
	gen := &fakeMutagen{mutations: sampleMutations(2)}

	err := newTestWorkflow(ui, &fakeReportStore{}, &fakeOrchestrator{}, gen).Estimate(context.Background(), EstimateArgs{FilePath: "calc.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ui.estimates) != 1 || len(ui.estimates[0]) != 2 {
		t.Fatalf("expected one estimation with 2 mutations, got %v", ui.estimates)
	}
}

func TestWorkflowView_NoReports(t *testing.T) {
	ui := &fakeUI{}

	err := newTestWorkflow(ui, &fakeReportStore{}, &fakeOrchestrator{}, &fakeMutagen{}).View(context.Background(), ViewArgs{Reports: ".sabot-reports"})
	if err == nil || !strings.Contains(err.Error(), "no reports found") {
		t.Fatalf("expected a no-reports error, got %v", err)
	}
}

func TestWorkflowView_DisplaysEveryReport(t *testing.T) {
	ui := &fakeUI{}
	store := &fakeReportStore{reports: []m.MutationReport{{ReportID: "a"}, {ReportID: "b"}}}

	err := newTestWorkflow(ui, store, &fakeOrchestrator{}, &fakeMutagen{}).View(context.Background(), ViewArgs{Reports: ".sabot-reports"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ui.reports) != 2 {
		t.Fatalf("expected 2 displayed reports, got %d", len(ui.reports))
	}
}

func TestWorkflowScore_AggregatesAcrossReports(t *testing.T) {
	ui := &fakeUI{}
	store := &fakeReportStore{reports: []m.MutationReport{
		{Mutations: []m.MutationResult{{Killed: true}, {Killed: true}}},
		{Mutations: []m.MutationResult{{Killed: false}, {Killed: true}}},
	}}

	score, err := newTestWorkflow(ui, store, &fakeOrchestrator{}, &fakeMutagen{}).Score(context.Background(), ScoreArgs{Reports: ".sabot-reports"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if score != 75 {
		t.Errorf("expected an aggregated score of 75, got %.1f", score)
	}

	if len(ui.scores) != 1 || ui.scores[0] != 75 {
		t.Errorf("score not displayed: %v", ui.scores)
	}
}

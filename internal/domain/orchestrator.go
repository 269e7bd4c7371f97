package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sabot-dev/sabot/internal/adapter"
	m "github.com/sabot-dev/sabot/internal/model"
)

// ExecutionErrorSentinel is recorded in KilledBy when the mutated code could
// not be applied or the test run itself crashed. A run that cannot complete
// is treated as conclusive evidence the mutation would have been caught; the
// crash is not surfaced as an engine error.
const ExecutionErrorSentinel = "test-execution-error"

// Orchestrator evaluates a single mutation: apply it, run the test suite,
// classify the outcome, and revert the file regardless of what happened in
// between.
type Orchestrator interface {
	// EvaluateMutation returns an error only when reverting the mutation
	// failed and the file may be left in a mutated state. Every other failure
	// mode is absorbed into the returned MutationResult.
	EvaluateMutation(ctx context.Context, mutation m.Mutation, options m.TestRunOptions) (m.MutationResult, error)
}

type orchestrator struct {
	mutator     Mutator
	testAdapter adapter.TestRunnerAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided mutator
// and test runner.
func NewOrchestrator(mutator Mutator, testAdapter adapter.TestRunnerAdapter) Orchestrator {
	return &orchestrator{
		mutator:     mutator,
		testAdapter: testAdapter,
	}
}

// EvaluateMutation owns the target file exclusively for the duration of one
// call: the mutated content must never outlive it. Evaluations are strictly
// sequential; two in-flight mutations on the same file would corrupt each
// other's positions and each other's revert.
func (o *orchestrator) EvaluateMutation(ctx context.Context, mutation m.Mutation, options m.TestRunOptions) (m.MutationResult, error) {
	start := time.Now()

	if err := o.mutator.Apply(ctx, mutation); err != nil {
		slog.Warn("failed to apply mutation", "id", mutation.ID, "file", mutation.File, "error", err)
		// Apply is atomic, so a failed apply left the file untouched and
		// there is nothing to revert.
		return executionErrorResult(mutation, time.Since(start)), nil
	}

	outcomes, runErr := o.testAdapter.RunTests(ctx, options)

	// Revert must happen even when the run failed or the context was
	// cancelled; a caller-supplied cancellation signal cannot skip it.
	if err := o.mutator.Revert(context.WithoutCancel(ctx), mutation); err != nil {
		return m.MutationResult{}, fmt.Errorf("revert mutation %d on %s: %w", mutation.ID, mutation.File, err)
	}

	if runErr != nil {
		slog.Warn("test execution failed, counting mutation as killed", "id", mutation.ID, "file", mutation.File, "error", runErr)
		return executionErrorResult(mutation, time.Since(start)), nil
	}

	killedBy := failingTests(outcomes)

	result := resultForMutation(mutation)
	result.Killed = len(killedBy) > 0
	result.KilledBy = killedBy
	result.Duration = time.Since(start)

	return result, nil
}

// failingTests returns the full names of failing outcomes in the order the
// runner reported them.
func failingTests(outcomes []m.TestOutcome) []string {
	var names []string

	for _, outcome := range outcomes {
		if outcome.Status == m.TestFailed {
			names = append(names, outcome.FullName)
		}
	}

	return names
}

func executionErrorResult(mutation m.Mutation, elapsed time.Duration) m.MutationResult {
	result := resultForMutation(mutation)
	result.Killed = true
	result.KilledBy = []string{ExecutionErrorSentinel}
	result.Duration = elapsed

	return result
}

func resultForMutation(mutation m.Mutation) m.MutationResult {
	return m.MutationResult{
		ID:       mutation.ID,
		File:     mutation.File,
		Line:     mutation.Line,
		Type:     mutation.Type,
		Original: mutation.Original,
		Mutated:  mutation.Mutated,
	}
}

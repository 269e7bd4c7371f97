package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	m "github.com/sabot-dev/sabot/internal/model"
)

// DefaultTestTimeout bounds a single test suite invocation when the caller
// does not supply one.
const DefaultTestTimeout = 30 * time.Second

// TestRunnerAdapter abstracts test suite execution. The engine only consumes
// the returned outcomes; how they are obtained (subprocess, in-process
// runner, mock) is an implementation concern.
type TestRunnerAdapter interface {
	// RunTests executes the test suite described by options and returns one
	// outcome per test case. An error means the run itself could not complete,
	// not that tests failed; failing tests are reported as outcomes.
	RunTests(ctx context.Context, options m.TestRunOptions) ([]m.TestOutcome, error)
}

// LocalTestRunnerAdapter runs test suites via os/exec. Currently the "go"
// framework is supported through `go test -json`.
type LocalTestRunnerAdapter struct{}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{}
}

// RunTests dispatches on the requested framework and executes the suite.
func (a *LocalTestRunnerAdapter) RunTests(ctx context.Context, options m.TestRunOptions) ([]m.TestOutcome, error) {
	switch options.Framework {
	case "", "go":
		return a.runGoTest(ctx, options)
	default:
		return nil, fmt.Errorf("unsupported test framework: %s", options.Framework)
	}
}

func (a *LocalTestRunnerAdapter) runGoTest(ctx context.Context, options m.TestRunOptions) ([]m.TestOutcome, error) {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTestTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{"test", "-json", "-timeout", timeout.String()}
	if options.Pattern != "" {
		args = append(args, "-run", options.Pattern)
	}

	workDir := resolveWorkDir(options.TestPath)

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = workDir

	slog.Debug("running test suite",
		"dir", workDir,
		"command", shellescape.QuoteCommand(append([]string{"go"}, args...)),
	)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	outcomes := parseGoTestEvents(&stdout)

	// `go test` exits non-zero when any test fails; the failures are already
	// carried by the outcomes. Only a run that produced no outcomes at all
	// (build error, crash, timeout) is surfaced as an execution error.
	if len(outcomes) == 0 && runErr != nil {
		return nil, fmt.Errorf("go test failed: %w: %s", runErr, strings.TrimSpace(stderr.String()))
	}

	return outcomes, nil
}

// resolveWorkDir maps the requested test path onto the package directory the
// go tool should run in. An empty path means the current directory.
func resolveWorkDir(testPath m.Path) string {
	path := string(testPath)
	if path == "" {
		return "."
	}

	if strings.HasSuffix(path, ".go") {
		return filepath.Dir(path)
	}

	return path
}

// goTestEvent mirrors the JSON stream emitted by `go test -json`.
type goTestEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
}

// parseGoTestEvents converts a test2json event stream into per-test outcomes,
// preserving the order in which tests completed. Lines that are not valid
// events (plain build output) are skipped.
func parseGoTestEvents(r io.Reader) []m.TestOutcome {
	var outcomes []m.TestOutcome

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var event goTestEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}

		if event.Test == "" {
			continue
		}

		status, ok := statusForAction(event.Action)
		if !ok {
			continue
		}

		fullName := event.Test
		if event.Package != "" {
			fullName = event.Package + "." + event.Test
		}

		outcomes = append(outcomes, m.TestOutcome{
			ID:       fullName,
			Name:     event.Test,
			FullName: fullName,
			Status:   status,
			Duration: time.Duration(event.Elapsed * float64(time.Second)),
		})
	}

	return outcomes
}

func statusForAction(action string) (m.TestStatus, bool) {
	switch action {
	case "pass":
		return m.TestPassed, true
	case "fail":
		return m.TestFailed, true
	case "skip":
		return m.TestSkipped, true
	default:
		return "", false
	}
}

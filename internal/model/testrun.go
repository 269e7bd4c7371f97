package model

import "time"

// TestStatus is the outcome of a single test case.
type TestStatus string

const (
	// TestPassed indicates the test case succeeded.
	TestPassed TestStatus = "passed"
	// TestFailed indicates the test case failed.
	TestFailed TestStatus = "failed"
	// TestSkipped indicates the test case was skipped.
	TestSkipped TestStatus = "skipped"
)

// TestOutcome is the per-test result returned by a test runner. The mutation
// engine only inspects Status and FullName; everything else is informational.
type TestOutcome struct {
	ID       string
	Name     string
	FullName string
	Status   TestStatus
	Duration time.Duration
}

// TestRunOptions describes the scope of a single test suite invocation.
type TestRunOptions struct {
	Framework string
	TestPath  Path
	Pattern   string
	Timeout   time.Duration
}

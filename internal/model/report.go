package model

import "time"

// MutationResult is the outcome of evaluating a single mutation against the
// test suite. KilledBy is empty exactly when Killed is false; Duration covers
// apply, test run and revert.
type MutationResult struct {
	ID       int           `yaml:"id"`
	File     Path          `yaml:"file"`
	Line     int           `yaml:"line"`
	Type     MutationType  `yaml:"type"`
	Original string        `yaml:"original"`
	Mutated  string        `yaml:"mutated"`
	Killed   bool          `yaml:"killed"`
	KilledBy []string      `yaml:"killedBy,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// MutationReport aggregates the results of one mutation testing run.
// KilledMutations + SurvivedMutations == TotalMutations == len(Mutations).
type MutationReport struct {
	ReportID          string           `yaml:"reportId"`
	TotalMutations    int              `yaml:"totalMutations"`
	KilledMutations   int              `yaml:"killedMutations"`
	SurvivedMutations int              `yaml:"survivedMutations"`
	MutationScore     float64          `yaml:"mutationScore"`
	Mutations         []MutationResult `yaml:"mutations"`
	Timestamp         time.Time        `yaml:"timestamp"`
}

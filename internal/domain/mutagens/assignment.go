package mutagens

import (
	"fmt"

	m "github.com/sabot-dev/sabot/internal/model"
)

var assignmentSymbols = []string{"+=", "-=", "*=", "/=", "%="}

// Assignment builds the compound assignment swap entry (+=, -=, *=, /=, %=).
// Each match mutates into the four remaining operators.
func Assignment() Operator {
	return Operator{
		Type: m.MutationAssignment,
		Scan: func(line string) []Match {
			return scanSymbols(line, assignmentSymbols, nil)
		},
		Alternatives: func(original string) []string {
			return otherSymbols(assignmentSymbols, original)
		},
		Describe: func(original, mutated string) string {
			return fmt.Sprintf("Replace assignment operator %s with %s", original, mutated)
		},
	}
}

package mutagens

import (
	"fmt"

	m "github.com/sabot-dev/sabot/internal/model"
)

var logicalSymbols = []string{"&&", "||"}

// Logical builds the logical operator swap entry (&& <-> ||).
func Logical() Operator {
	return Operator{
		Type: m.MutationLogical,
		Scan: func(line string) []Match {
			return scanSymbols(line, logicalSymbols, nil)
		},
		Alternatives: func(original string) []string {
			return otherSymbols(logicalSymbols, original)
		},
		Describe: func(original, mutated string) string {
			return fmt.Sprintf("Replace logical operator %s with %s", original, mutated)
		},
	}
}

package mutagens

import (
	"fmt"

	m "github.com/sabot-dev/sabot/internal/model"
)

// Unary builds the unary not removal entry. A bare ! is deleted; the != and
// !== operators are left to the relational entry.
func Unary() Operator {
	return Operator{
		Type: m.MutationUnary,
		Scan: func(line string) []Match {
			return scanSymbols(line, []string{"!"}, notNotEquals)
		},
		Alternatives: func(string) []string {
			return []string{""}
		},
		Describe: func(original, _ string) string {
			return fmt.Sprintf("Remove unary operator %s", original)
		},
	}
}

func notNotEquals(line string, start int, symbol string) bool {
	next := start + len(symbol)
	return next >= len(line) || line[next] != '='
}

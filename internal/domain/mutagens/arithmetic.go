package mutagens

import (
	"fmt"

	m "github.com/sabot-dev/sabot/internal/model"
)

var arithmeticSymbols = []string{"+", "-", "*", "/", "%"}

// Arithmetic builds the arithmetic operator swap entry (+, -, *, /, %).
// Each match mutates into the four remaining operators.
func Arithmetic() Operator {
	return Operator{
		Type: m.MutationArithmetic,
		Scan: func(line string) []Match {
			return scanSymbols(line, arithmeticSymbols, arithmeticGuard)
		},
		Alternatives: func(original string) []string {
			return otherSymbols(arithmeticSymbols, original)
		},
		Describe: func(original, mutated string) string {
			return fmt.Sprintf("Replace arithmetic operator %s with %s", original, mutated)
		},
	}
}

// arithmeticGuard rejects a symbol that is the head of a compound assignment
// (+=, -=, ...), which belongs to the assignment operator, and a symbol that
// is doubled (//, ++, --), so comment markers and increment operators are
// not torn apart.
func arithmeticGuard(line string, start int, symbol string) bool {
	next := start + len(symbol)
	if next < len(line) && (line[next] == '=' || line[next] == symbol[0]) {
		return false
	}

	return start == 0 || line[start-1] != symbol[0]
}

package mutagens

import (
	"fmt"

	m "github.com/sabot-dev/sabot/internal/model"
)

// Longer symbols come first so <= is never read as < followed by =.
var relationalSymbols = []string{"===", "!==", "==", "!=", "<=", ">=", "<", ">"}

// Relational builds the relational operator swap entry. Each match mutates
// into the seven remaining operators.
func Relational() Operator {
	return Operator{
		Type: m.MutationRelational,
		Scan: func(line string) []Match {
			return scanSymbols(line, relationalSymbols, nil)
		},
		Alternatives: func(original string) []string {
			return otherSymbols(relationalSymbols, original)
		},
		Describe: func(original, mutated string) string {
			return fmt.Sprintf("Replace relational operator %s with %s", original, mutated)
		},
	}
}

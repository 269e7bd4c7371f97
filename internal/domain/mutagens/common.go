// Package mutagens provides the catalog of textual mutation operators.
package mutagens

import (
	m "github.com/sabot-dev/sabot/internal/model"
)

// Match is a single textual hit of an operator pattern within a line.
// Column is the 0-based character offset of the match start.
type Match struct {
	Column int
	Text   string
}

// Operator pairs a textual pattern with its substitution rules. Scan returns
// every non-overlapping match within a line, left to right. Alternatives
// returns the replacement candidates for a matched text; candidates equal to
// the original are filtered out by the generator. Describe renders the
// human-readable explanation for one candidate.
type Operator struct {
	Type         m.MutationType
	Scan         func(line string) []Match
	Alternatives func(original string) []string
	Describe     func(original, mutated string) string
}

// symbolGuard lets an operator reject a symbol hit based on its surroundings,
// e.g. to keep a bare + from matching inside +=.
type symbolGuard func(line string, start int, symbol string) bool

// scanSymbols finds non-overlapping occurrences of the provided symbols,
// trying them in the given order at each position. Longer symbols must be
// listed first so that e.g. <= is not mis-read as < followed by =.
func scanSymbols(line string, symbols []string, guard symbolGuard) []Match {
	var matches []Match

	for i := 0; i < len(line); {
		matched := false

		for _, symbol := range symbols {
			if !hasPrefixAt(line, i, symbol) {
				continue
			}

			if guard != nil && !guard(line, i, symbol) {
				continue
			}

			matches = append(matches, Match{Column: i, Text: symbol})
			i += len(symbol)
			matched = true

			break
		}

		if !matched {
			i++
		}
	}

	return matches
}

func hasPrefixAt(line string, offset int, prefix string) bool {
	return offset+len(prefix) <= len(line) && line[offset:offset+len(prefix)] == prefix
}

// otherSymbols returns every symbol from the set except the original,
// preserving set order.
func otherSymbols(symbols []string, original string) []string {
	alternatives := make([]string, 0, len(symbols)-1)

	for _, symbol := range symbols {
		if symbol != original {
			alternatives = append(alternatives, symbol)
		}
	}

	return alternatives
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

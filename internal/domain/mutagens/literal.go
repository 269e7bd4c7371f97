package mutagens

import (
	"fmt"
	"strconv"

	m "github.com/sabot-dev/sabot/internal/model"
)

// Number builds the numeric literal perturbation entry. A bare integer token
// produces two candidates, n+1 and n-1, rendered as decimal text. Digit runs
// attached to identifiers or to a decimal point are not bare integers.
func Number() Operator {
	return Operator{
		Type: m.MutationLiteral,
		Scan: scanIntegerLiterals,
		Alternatives: func(original string) []string {
			n, err := strconv.ParseInt(original, 10, 64)
			if err != nil {
				return nil
			}

			return []string{
				strconv.FormatInt(n+1, 10),
				strconv.FormatInt(n-1, 10),
			}
		},
		Describe: func(original, mutated string) string {
			return fmt.Sprintf("Replace numeric literal %s with %s", original, mutated)
		},
	}
}

func scanIntegerLiterals(line string) []Match {
	var matches []Match

	for i := 0; i < len(line); {
		if !isDigit(line[i]) {
			i++
			continue
		}

		end := i
		for end < len(line) && isDigit(line[end]) {
			end++
		}

		if isBareInteger(line, i, end) {
			matches = append(matches, Match{Column: i, Text: line[i:end]})
		}

		i = end
	}

	return matches
}

func isBareInteger(line string, start, end int) bool {
	if start > 0 && (isWordChar(line[start-1]) || line[start-1] == '.') {
		return false
	}

	return end >= len(line) || (!isWordChar(line[end]) && line[end] != '.')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String builds the string literal emptying entry. A non-empty single- or
// double-quoted literal is replaced by the same quotes enclosing nothing;
// empty literals would be a no-op and produce no match.
func String() Operator {
	return Operator{
		Type: m.MutationLiteral,
		Scan: scanStringLiterals,
		Alternatives: func(original string) []string {
			quote := original[0]
			return []string{string(quote) + string(quote)}
		},
		Describe: func(original, _ string) string {
			return fmt.Sprintf("Replace string literal %s with empty string", original)
		},
	}
}

func scanStringLiterals(line string) []Match {
	var matches []Match

	for i := 0; i < len(line); {
		quote := line[i]
		if quote != '"' && quote != '\'' {
			i++
			continue
		}

		closing := findClosingQuote(line, i+1, quote)
		if closing < 0 {
			i++
			continue
		}

		// Skip empty literals: emptying them would change nothing.
		if closing > i+1 {
			matches = append(matches, Match{Column: i, Text: line[i : closing+1]})
		}

		i = closing + 1
	}

	return matches
}

func findClosingQuote(line string, from int, quote byte) int {
	for i := from; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}

	return -1
}

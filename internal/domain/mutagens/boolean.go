package mutagens

import (
	"fmt"
	"strings"

	m "github.com/sabot-dev/sabot/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// Boolean builds the boolean literal flip entry (true <-> false). Only whole
// words match, so identifiers like "construe" are left alone.
func Boolean() Operator {
	return Operator{
		Type:         m.MutationReturnValue,
		Scan:         scanBooleanLiterals,
		Alternatives: func(original string) []string { return []string{flipBoolean(original)} },
		Describe: func(original, mutated string) string {
			return fmt.Sprintf("Replace boolean literal %s with %s", original, mutated)
		},
	}
}

func scanBooleanLiterals(line string) []Match {
	var matches []Match

	for i := 0; i < len(line); {
		word := ""

		if strings.HasPrefix(line[i:], trueStr) {
			word = trueStr
		} else if strings.HasPrefix(line[i:], falseStr) {
			word = falseStr
		}

		if word == "" || !isWholeWord(line, i, len(word)) {
			i++
			continue
		}

		matches = append(matches, Match{Column: i, Text: word})
		i += len(word)
	}

	return matches
}

func isWholeWord(line string, start, length int) bool {
	if start > 0 && isWordChar(line[start-1]) {
		return false
	}

	end := start + length

	return end >= len(line) || !isWordChar(line[end])
}

func flipBoolean(original string) string {
	if original == trueStr {
		return falseStr
	}

	return trueStr
}

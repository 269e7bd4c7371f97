// Package model defines the data structures for mutation testing.
package model

// Path represents a file system path.
type Path string

// MutationType represents the category of mutation operator.
type MutationType string

const (
	// MutationArithmetic swaps arithmetic operators (+, -, *, /, %).
	MutationArithmetic MutationType = "arithmetic-operator"
	// MutationRelational swaps relational operators (===, !==, ==, !=, <=, >=, <, >).
	MutationRelational MutationType = "relational-operator"
	// MutationLogical swaps logical operators (&& <-> ||).
	MutationLogical MutationType = "logical-operator"
	// MutationUnary removes the unary not operator (!).
	MutationUnary MutationType = "unary-operator"
	// MutationAssignment swaps compound assignment operators (+=, -=, *=, /=, %=).
	MutationAssignment MutationType = "assignment-operator"
	// MutationReturnValue flips boolean literals (true <-> false).
	MutationReturnValue MutationType = "return-value"
	// MutationLiteral perturbs numeric literals (n±1) and empties string literals.
	MutationLiteral MutationType = "literal"
)

// AllMutationTypes returns the closed set of mutation types in catalog order.
func AllMutationTypes() []MutationType {
	return []MutationType{
		MutationArithmetic,
		MutationRelational,
		MutationLogical,
		MutationUnary,
		MutationAssignment,
		MutationReturnValue,
		MutationLiteral,
	}
}

// IsValidMutationType reports whether t is a member of the closed type set.
func IsValidMutationType(t MutationType) bool {
	for _, known := range AllMutationTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// Mutation is an immutable, self-describing edit proposal against a source file.
// Line is 1-based, Column is a 0-based character offset within that line, both
// recorded at generation time. A mutation is only valid against the file in its
// pre-mutation state; positions are never recomputed after the file changes.
type Mutation struct {
	ID          int
	File        Path
	Line        int
	Column      int
	Type        MutationType
	Original    string
	Mutated     string
	Description string
}

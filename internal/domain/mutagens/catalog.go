package mutagens

// Catalog returns the fixed, ordered operator list. The order is part of the
// engine contract: mutations for a line are emitted in this catalog order,
// and reports preserve it. Callers get a fresh slice each time, so the
// catalog behaves as read-only configuration.
func Catalog() []Operator {
	return []Operator{
		Arithmetic(),
		Relational(),
		Logical(),
		Unary(),
		Assignment(),
		Boolean(),
		Number(),
		String(),
	}
}

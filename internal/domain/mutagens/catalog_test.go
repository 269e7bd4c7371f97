package mutagens

import (
	"testing"

	m "github.com/sabot-dev/sabot/internal/model"
)

func TestCatalog_OrderIsFixed(t *testing.T) {
	catalog := Catalog()

	if len(catalog) != 8 {
		t.Fatalf("expected 8 catalog entries, got %d", len(catalog))
	}

	expected := []m.MutationType{
		m.MutationArithmetic,
		m.MutationRelational,
		m.MutationLogical,
		m.MutationUnary,
		m.MutationAssignment,
		m.MutationReturnValue,
		m.MutationLiteral,
		m.MutationLiteral,
	}

	for i, want := range expected {
		if catalog[i].Type != want {
			t.Errorf("entry %d: expected %s, got %s", i, want, catalog[i].Type)
		}
	}
}

func TestCatalog_ReturnsFreshSlices(t *testing.T) {
	first := Catalog()
	second := Catalog()

	first[0] = Operator{}

	if second[0].Type != m.MutationArithmetic {
		t.Fatal("mutating one catalog slice must not affect another")
	}
}

func TestCatalog_EntriesAreComplete(t *testing.T) {
	for i, operator := range Catalog() {
		if operator.Scan == nil || operator.Alternatives == nil || operator.Describe == nil {
			t.Errorf("entry %d (%s) is missing a rule function", i, operator.Type)
		}

		if !m.IsValidMutationType(operator.Type) {
			t.Errorf("entry %d has unknown type %s", i, operator.Type)
		}
	}
}

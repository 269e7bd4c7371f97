package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sabot-dev/sabot/internal/adapter"
	m "github.com/sabot-dev/sabot/internal/model"
)

func writeSourceFile(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "calc.js")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	return m.Path(path)
}

func readSourceFile(t *testing.T, path m.Path) string {
	t.Helper()

	content, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	return string(content)
}

func TestMutator_ApplyThenRevertRestoresContent(t *testing.T) {
	original := "const result = 5 + 3;\nconsole.log(result);\n"
	path := writeSourceFile(t, original)
	mut := NewMutator(adapter.NewLocalSourceFSAdapter())

	mutation := m.Mutation{
		ID:       1,
		File:     path,
		Line:     1,
		Column:   17,
		Type:     m.MutationArithmetic,
		Original: "+",
		Mutated:  "-",
	}

	if err := mut.Apply(context.Background(), mutation); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := readSourceFile(t, path); got != "const result = 5 - 3;\nconsole.log(result);\n" {
		t.Fatalf("unexpected mutated content: %q", got)
	}

	if err := mut.Revert(context.Background(), mutation); err != nil {
		t.Fatalf("revert: %v", err)
	}

	if got := readSourceFile(t, path); got != original {
		t.Fatalf("revert did not restore content: %q", got)
	}
}

func TestMutator_RoundTripWithDifferentLengths(t *testing.T) {
	original := "if (count <= limit) {\n	return true;\n}\n"
	path := writeSourceFile(t, original)
	mut := NewMutator(adapter.NewLocalSourceFSAdapter())

	mutation := m.Mutation{
		ID:       2,
		File:     path,
		Line:     1,
		Column:   10,
		Type:     m.MutationRelational,
		Original: "<=",
		Mutated:  ">",
	}

	if err := mut.Apply(context.Background(), mutation); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := readSourceFile(t, path); got != "if (count > limit) {\n	return true;\n}\n" {
		t.Fatalf("unexpected mutated content: %q", got)
	}

	if err := mut.Revert(context.Background(), mutation); err != nil {
		t.Fatalf("revert: %v", err)
	}

	if got := readSourceFile(t, path); got != original {
		t.Fatalf("revert did not restore content: %q", got)
	}
}

func TestMutator_StalePositionFailsWithoutWriting(t *testing.T) {
	original := "const result = 5 * 3;\n"
	path := writeSourceFile(t, original)
	mut := NewMutator(adapter.NewLocalSourceFSAdapter())

	mutation := m.Mutation{
		ID:       3,
		File:     path,
		Line:     1,
		Column:   17,
		Original: "+",
		Mutated:  "-",
	}

	if err := mut.Apply(context.Background(), mutation); err == nil {
		t.Fatal("expected an error when the recorded text is not at the position")
	}

	if got := readSourceFile(t, path); got != original {
		t.Fatalf("file was modified despite the mismatch: %q", got)
	}
}

func TestMutator_PositionOutOfRange(t *testing.T) {
	path := writeSourceFile(t, "const x = 1;\n")
	mut := NewMutator(adapter.NewLocalSourceFSAdapter())

	cases := map[string]m.Mutation{
		"line beyond file":   {ID: 4, File: path, Line: 9, Column: 0, Original: "x", Mutated: "y"},
		"line zero":          {ID: 5, File: path, Line: 0, Column: 0, Original: "x", Mutated: "y"},
		"column beyond line": {ID: 6, File: path, Line: 1, Column: 40, Original: "x", Mutated: "y"},
	}

	for name, mutation := range cases {
		t.Run(name, func(t *testing.T) {
			if err := mut.Apply(context.Background(), mutation); err == nil {
				t.Fatal("expected an out of range error")
			}
		})
	}
}

func TestMutator_MissingFile(t *testing.T) {
	mut := NewMutator(adapter.NewLocalSourceFSAdapter())

	mutation := m.Mutation{
		ID:       7,
		File:     m.Path(filepath.Join(t.TempDir(), "gone.js")),
		Line:     1,
		Column:   0,
		Original: "a",
		Mutated:  "b",
	}

	if err := mut.Apply(context.Background(), mutation); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

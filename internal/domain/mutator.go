package domain

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sabot-dev/sabot/internal/adapter"
	m "github.com/sabot-dev/sabot/internal/model"
)

// Mutator applies a mutation to its target file and reverts it again, purely
// in terms of the line, column and text lengths recorded on the Mutation at
// generation time. Revert is the exact left inverse of Apply as long as no
// other writer touched the file in between.
type Mutator interface {
	Apply(ctx context.Context, mutation m.Mutation) error
	Revert(ctx context.Context, mutation m.Mutation) error
}

type mutator struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewMutator constructs a Mutator backed by the provided filesystem adapter.
func NewMutator(fsAdapter adapter.SourceFSAdapter) Mutator {
	return &mutator{fsAdapter: fsAdapter}
}

// Apply replaces len(Original) characters at the recorded position with the
// Mutated text in a single whole-file read-modify-write.
func (mt *mutator) Apply(ctx context.Context, mutation m.Mutation) error {
	return mt.edit(ctx, mutation, mutation.Original, mutation.Mutated)
}

// Revert replaces len(Mutated) characters at the recorded position with the
// Original text, restoring the pre-apply content byte for byte.
func (mt *mutator) Revert(ctx context.Context, mutation m.Mutation) error {
	return mt.edit(ctx, mutation, mutation.Mutated, mutation.Original)
}

func (mt *mutator) edit(ctx context.Context, mutation m.Mutation, from, to string) error {
	content, err := mt.fsAdapter.ReadFile(ctx, mutation.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", mutation.File, err)
	}

	info, err := mt.fsAdapter.FileInfo(ctx, mutation.File)
	if err != nil {
		return fmt.Errorf("stat %s: %w", mutation.File, err)
	}

	lines := strings.Split(string(content), "\n")

	if mutation.Line < 1 || mutation.Line > len(lines) {
		return fmt.Errorf("mutation %d: line %d out of range for %s", mutation.ID, mutation.Line, mutation.File)
	}

	line := lines[mutation.Line-1]

	end := mutation.Column + len(from)
	if mutation.Column < 0 || end > len(line) {
		return fmt.Errorf("mutation %d: column %d out of range on line %d of %s", mutation.ID, mutation.Column, mutation.Line, mutation.File)
	}

	// A mismatch means the file changed since generation; editing it anyway
	// would corrupt content the mutation does not own.
	if current := line[mutation.Column:end]; current != from {
		return fmt.Errorf("mutation %d: expected %q at %s:%d:%d, found %q", mutation.ID, from, mutation.File, mutation.Line, mutation.Column, current)
	}

	lines[mutation.Line-1] = line[:mutation.Column] + to + line[end:]

	edited := strings.Join(lines, "\n")
	if err := mt.fsAdapter.WriteFile(ctx, mutation.File, []byte(edited), fileMode(info)); err != nil {
		return fmt.Errorf("write %s: %w", mutation.File, err)
	}

	return nil
}

func fileMode(info os.FileInfo) os.FileMode {
	if info == nil {
		return 0o600
	}

	return info.Mode().Perm()
}

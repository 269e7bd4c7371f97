// Package domain contains the core mutation testing engine: mutation
// generation, application and reversion, evaluation against a test suite,
// and report aggregation.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sabot-dev/sabot/internal/adapter"
	"github.com/sabot-dev/sabot/internal/domain/mutagens"
	m "github.com/sabot-dev/sabot/internal/model"
)

// Mutagen generates mutations for a source file.
type Mutagen interface {
	// GenerateMutations scans the file line by line and emits one Mutation per
	// distinct non-original replacement found by the catalog. When
	// mutationTypes is non-empty only operators of those types are applied.
	// An unreadable file yields an empty list, not an error.
	GenerateMutations(ctx context.Context, path m.Path, mutationTypes ...m.MutationType) ([]m.Mutation, error)
}

type mutagen struct {
	fsAdapter adapter.SourceFSAdapter
	catalog   []mutagens.Operator
}

// NewMutagen creates a Mutagen backed by the fixed operator catalog.
func NewMutagen(fsAdapter adapter.SourceFSAdapter) Mutagen {
	return &mutagen{
		fsAdapter: fsAdapter,
		catalog:   mutagens.Catalog(),
	}
}

func (mg *mutagen) GenerateMutations(ctx context.Context, path m.Path, mutationTypes ...m.MutationType) ([]m.Mutation, error) {
	if path == "" {
		return nil, fmt.Errorf("missing source path")
	}

	if err := validateMutationTypes(mutationTypes); err != nil {
		return nil, err
	}

	content, err := mg.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		slog.Warn("skipping unreadable source file", "path", path, "error", err)
		return []m.Mutation{}, nil
	}

	wanted := typeSet(mutationTypes)
	lines := strings.Split(string(content), "\n")
	mutations := make([]m.Mutation, 0)
	nextID := 1

	// Ordering contract: line order, then catalog order, then match order
	// within the line, then candidate order within the match.
	for lineIdx, line := range lines {
		for _, operator := range mg.catalog {
			if wanted != nil && !wanted[operator.Type] {
				continue
			}

			for _, match := range operator.Scan(line) {
				for _, candidate := range operator.Alternatives(match.Text) {
					if candidate == match.Text {
						continue
					}

					mutations = append(mutations, m.Mutation{
						ID:          nextID,
						File:        path,
						Line:        lineIdx + 1,
						Column:      match.Column,
						Type:        operator.Type,
						Original:    match.Text,
						Mutated:     candidate,
						Description: operator.Describe(match.Text, candidate),
					})
					nextID++
				}
			}
		}
	}

	return mutations, nil
}

func validateMutationTypes(mutationTypes []m.MutationType) error {
	for _, mutationType := range mutationTypes {
		if !m.IsValidMutationType(mutationType) {
			return fmt.Errorf("unsupported mutation type: %s", mutationType)
		}
	}

	return nil
}

// typeSet returns nil when no filter was requested, meaning all types apply.
func typeSet(mutationTypes []m.MutationType) map[m.MutationType]bool {
	if len(mutationTypes) == 0 {
		return nil
	}

	wanted := make(map[m.MutationType]bool, len(mutationTypes))
	for _, mutationType := range mutationTypes {
		wanted[mutationType] = true
	}

	return wanted
}

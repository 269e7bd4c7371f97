package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	m "github.com/sabot-dev/sabot/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists and retrieves mutation reports.
type ReportStore interface {
	// SaveReport writes one report into the reports directory, creating the
	// directory if needed.
	SaveReport(ctx context.Context, dir m.Path, report m.MutationReport) error

	// LoadReports reads every stored report from the directory, ordered by
	// completion timestamp.
	LoadReports(ctx context.Context, dir m.Path) ([]m.MutationReport, error)
}

type reportStore struct{}

// NewReportStore constructs a YAML-file backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReport(ctx context.Context, dir m.Path, report m.MutationReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if report.ReportID == "" {
		report.ReportID = uuid.NewString()
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir %s: %w", dir, err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", report.ReportID, err)
	}

	target := filepath.Join(string(dir), "report-"+report.ReportID+".yaml")
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", target, err)
	}

	return nil
}

func (rs *reportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.MutationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir %s: %w", dir, err)
	}

	var reports []m.MutationReport

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.MutationReport
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("parse report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp.Before(reports[j].Timestamp)
	})

	return reports, nil
}

package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	m "github.com/sabot-dev/sabot/internal/model"
)

const (
	killedLabel   = "killed"
	survivedLabel = "survived"
)

// renderEstimationTable renders per-type mutation counts for a single file.
func renderEstimationTable(mutations []m.Mutation) string {
	counts := make(map[m.MutationType]int)
	for _, mutation := range mutations {
		counts[mutation.Type]++
	}

	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Mutation Type", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, mutationType := range m.AllMutationTypes() {
		if counts[mutationType] == 0 {
			continue
		}

		table.Append([]string{string(mutationType), fmt.Sprintf("%d", counts[mutationType])})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(mutations))})
	table.Render()

	return buffer.String()
}

// renderReportTable renders one mutation report, one row per result.
func renderReportTable(report m.MutationReport) string {
	var buffer bytes.Buffer

	fmt.Fprintf(&buffer, "\nReport %s (%s)\n\n", report.ReportID, report.Timestamp.Format(time.RFC3339))

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"ID", "Line", "Type", "Mutation", "Result", "Killed By"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, result := range report.Mutations {
		table.Append([]string{
			fmt.Sprintf("%d", result.ID),
			fmt.Sprintf("%d", result.Line),
			string(result.Type),
			fmt.Sprintf("%s -> %s", result.Original, result.Mutated),
			resultLabel(result),
			firstKiller(result),
		})
	}

	table.Render()

	fmt.Fprintf(&buffer, "\nTotal: %d | Killed: %d | Survived: %d | Score: %.1f%%\n",
		report.TotalMutations, report.KilledMutations, report.SurvivedMutations, report.MutationScore)

	return buffer.String()
}

func resultLabel(result m.MutationResult) string {
	if result.Killed {
		return killedLabel
	}

	return survivedLabel
}

func firstKiller(result m.MutationResult) string {
	if len(result.KilledBy) == 0 {
		return ""
	}

	return result.KilledBy[0]
}

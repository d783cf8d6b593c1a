// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderPlanTable renders targets as a markdown table with one row per file,
// suitable for a dry run.
//
// Parameters:
//   - targets: Planned targets, usually from [Generator.Plan]
//
// Returns:
//   - string: Markdown table with kind, path and status columns
//   - error: Any error from the table renderer
func RenderPlanTable(targets []Target) (string, error) {
	if len(targets) == 0 {
		return "No files to generate\n", nil
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Kind", "Path", "Status"})

	rows := make([][]string, 0, len(targets))
	for i, t := range targets {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			t.Kind.String(),
			t.Path,
			t.Status.String(),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("building plan table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("rendering plan table: %w", err)
	}
	return buf.String(), nil
}

// PlanError returns the error [Generator.Validate] would report for targets,
// or nil when every target can be created.
func PlanError(targets []Target) error {
	return targetErrors(targets)
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Unit tests for report assembly and text rendering. Covers severity
splitting, count invariants, header truncation, silent clean output and the
banner/status rendering.
*/

package report_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSplitsBySeverity(t *testing.T) {
	findings := []report.Finding{
		report.NewWarning(report.CategoryEncoding, "w1"),
		report.NewError(report.CategoryStructure, "e1"),
		report.NewWarning(report.CategoryContent, "w2"),
		report.NewError(report.CategoryHeader, "e2"),
	}
	r := report.Build("data.csv", findings, report.Stats{})

	assert.Equal(t, "data.csv", r.File)
	assert.False(t, r.Valid)
	assert.Equal(t, 2, r.ErrorCount)
	assert.Equal(t, 2, r.WarningCount)
	require.Len(t, r.Errors, 2)
	require.Len(t, r.Warnings, 2)

	// Emission order is preserved inside each list
	assert.Equal(t, "e1", r.Errors[0].Message)
	assert.Equal(t, "e2", r.Errors[1].Message)
	assert.Equal(t, "w1", r.Warnings[0].Message)
	assert.Equal(t, "w2", r.Warnings[1].Message)
}

func TestBuildCleanReport(t *testing.T) {
	r := report.Build("data.csv", nil, report.Stats{})
	assert.True(t, r.Valid)
	assert.Zero(t, r.ErrorCount)
	assert.Zero(t, r.WarningCount)
	assert.NotNil(t, r.Errors)
	assert.NotNil(t, r.Warnings)
	assert.NotNil(t, r.Stats.Headers)
}

func TestBuildTruncatesHeaders(t *testing.T) {
	headers := make([]string, 75)
	for i := range headers {
		headers[i] = fmt.Sprintf("col%d", i+1)
	}
	r := report.Build("wide.csv", nil, report.Stats{TotalColumns: 75, Headers: headers})
	assert.Len(t, r.Stats.Headers, report.HeaderDisplayLimit)
	assert.Equal(t, 75, r.Stats.TotalColumns)
}

func TestFormatTextSilentWhenClean(t *testing.T) {
	r := report.Build("data.csv", nil, report.Stats{TotalRows: 2})
	assert.Equal(t, "", report.FormatText(r, false))
	assert.NotEqual(t, "", report.FormatText(r, true))
}

func TestFormatTextSections(t *testing.T) {
	e := report.NewError(report.CategoryStructure, "bad row")
	e.Line = 3
	w := report.NewWarning(report.CategoryWhitespace, "messy cell")
	w.Line = 2
	w.Column = 1
	w.Suggestion = "trim it"

	r := report.Build("data.csv", []report.Finding{e, w}, report.Stats{
		TotalRows:    4,
		TotalColumns: 2,
		Headers:      []string{"a", "b"},
		Encoding:     "utf-8",
		Delimiter:    "comma",
		Format:       "CSV",
	})
	out := report.FormatText(r, false)

	assert.Contains(t, out, "CSV VALIDATION REPORT: data.csv")
	assert.Contains(t, out, "Rows: 4, Columns: 2, Encoding: utf-8, Format: CSV, Delimiter: comma")
	assert.Contains(t, out, "ERRORS (1):")
	assert.Contains(t, out, "✗ [structure] [line 3]: bad row")
	assert.Contains(t, out, "WARNINGS (1):")
	assert.Contains(t, out, "⚠ [whitespace] [line 2, col 1]: messy cell")
	assert.Contains(t, out, "→ trim it")
	assert.Contains(t, out, "Status: INVALID")
	assert.False(t, strings.Contains(out, "COLUMNS:"))
}

func TestFormatTextStatusLabels(t *testing.T) {
	warnOnly := report.Build("f.csv", []report.Finding{
		report.NewWarning(report.CategoryContent, "w"),
	}, report.Stats{})
	assert.Contains(t, report.FormatText(warnOnly, false), "Status: VALID (with warnings)")

	clean := report.Build("f.csv", nil, report.Stats{})
	assert.Contains(t, report.FormatText(clean, true), "Status: VALID\n")
}

func TestFormatTextColumnListing(t *testing.T) {
	r := report.Build("f.csv", nil, report.Stats{
		TotalRows:    2,
		TotalColumns: 2,
		Headers:      []string{"alpha", "beta"},
	})
	out := report.FormatText(r, true)
	assert.Contains(t, out, "COLUMNS:")
	assert.Contains(t, out, "1. alpha")
	assert.Contains(t, out, "2. beta")
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "[3, 7]", report.JoinInts([]int{3, 7}, 10))
	assert.Equal(t, "[1, 2]...", report.JoinInts([]int{1, 2, 3}, 2))
	assert.Equal(t, "[]", report.JoinInts(nil, 10))
}

func TestJoinRefs(t *testing.T) {
	refs := []report.CellRef{{Line: 1, Column: 2}, {Line: 3, Column: 4}}
	assert.Equal(t, "[(1, 2), (3, 4)]", report.JoinRefs(refs, 10))
	assert.Equal(t, "[(1, 2)]", report.JoinRefs(refs, 1))
}

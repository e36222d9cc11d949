/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Structural analysis for the Akaylee CSV Lint engine. Resolves the real
header by detecting metadata preambles from the column-count mode, then checks header
quality, column-count consistency, empty rows and duplicate rows. Every check is a pure
function of the parsed rows and the header decision.
*/

package structure

import (
	"fmt"
	"strings"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
)

// preambleModeShare is the fraction of rows the column-count mode must exceed
// before a divergent first row is treated as a metadata preamble. Load-bearing.
const preambleModeShare = 0.5

// lineListSample caps how many line numbers a grouped finding displays
const lineListSample = 20

// reservedHeaderNames are ambiguous in most downstream tooling
var reservedHeaderNames = map[string]bool{
	"id":        true,
	"null":      true,
	"none":      true,
	"undefined": true,
	"nan":       true,
}

// Decision is the resolved header/column-count contract the content checks
// consume. Preamble rows are excluded from column-count reporting only; all
// other checks still see them.
type Decision struct {
	Header          []string // Final header row, possibly promoted past a preamble
	HeaderLine      int      // 1-indexed parse line of the final header
	ExpectedColumns int      // Column count every data row is held to
	MetadataRows    int      // Rows before the promoted header, 0 when none
	Promoted        bool     // True when a preamble redefined the header
}

// Resolve computes the column-count mode and decides the header. When the
// mode clearly dominates (more than half of all rows) and differs from the
// first row's width, the first row is a metadata preamble and the header is
// promoted to the first row matching the mode.
func Resolve(rows [][]string) Decision {
	if len(rows) == 0 {
		return Decision{}
	}

	headerCols := len(rows[0])
	mode, modeFreq := columnCountMode(rows)

	if float64(modeFreq) > float64(len(rows))*preambleModeShare && mode != headerCols {
		metadataEnd := 0
		for i, row := range rows {
			if len(row) == mode {
				metadataEnd = i
				break
			}
		}
		if metadataEnd > 0 {
			return Decision{
				Header:          rows[metadataEnd],
				HeaderLine:      metadataEnd + 1,
				ExpectedColumns: mode,
				MetadataRows:    metadataEnd,
				Promoted:        true,
			}
		}
		return Decision{Header: rows[0], HeaderLine: 1, ExpectedColumns: mode}
	}

	return Decision{Header: rows[0], HeaderLine: 1, ExpectedColumns: headerCols}
}

// columnCountMode returns the most common per-row field count. Ties resolve
// to the count seen first, keeping the decision deterministic.
func columnCountMode(rows [][]string) (mode, freq int) {
	counts := make(map[int]int)
	var order []int
	for _, row := range rows {
		if counts[len(row)] == 0 {
			order = append(order, len(row))
		}
		counts[len(row)]++
	}
	for _, c := range order {
		if counts[c] > freq {
			mode, freq = c, counts[c]
		}
	}
	return mode, freq
}

// Analyze emits the structural findings in fixed order: header checks against
// the resolved header, the preamble warning, grouped column-count errors, and
// the empty-row warning.
func Analyze(rows [][]string, dec Decision) []report.Finding {
	if len(rows) == 0 {
		return []report.Finding{report.NewError(report.CategoryHeader, "No headers found (file may be empty)")}
	}

	findings := headerFindings(dec)

	if dec.MetadataRows > 0 {
		f := report.NewWarning(report.CategoryStructure,
			fmt.Sprintf("File appears to have %d metadata row(s) before tabular data", dec.MetadataRows))
		f.Suggestion = fmt.Sprintf("Data rows have %d columns; first %d row(s) are likely headers/metadata",
			dec.ExpectedColumns, dec.MetadataRows)
		f.MetadataRows = dec.MetadataRows
		findings = append(findings, f)
	}

	findings = append(findings, columnCountFindings(rows, dec)...)
	findings = append(findings, emptyRowFindings(rows)...)
	return findings
}

func headerFindings(dec Decision) []report.Finding {
	var findings []report.Finding
	header := dec.Header

	var emptyCols []int
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			emptyCols = append(emptyCols, i+1)
		}
	}
	if len(emptyCols) > 0 {
		f := report.NewError(report.CategoryHeader,
			fmt.Sprintf("Empty header(s) in column(s): %s", report.JoinInts(emptyCols, len(emptyCols))))
		f.Line = dec.HeaderLine
		findings = append(findings, f)
	}

	if dups := duplicateNames(header); len(dups) > 0 {
		f := report.NewError(report.CategoryHeader, fmt.Sprintf("Duplicate headers found: %s", dups))
		f.Line = dec.HeaderLine
		findings = append(findings, f)
	}

	normalized := make(map[string]int)
	for i, h := range header {
		norm := strings.ToLower(strings.TrimSpace(h))
		if prev, seen := normalized[norm]; seen {
			f := report.NewWarning(report.CategoryHeader,
				fmt.Sprintf("Headers '%s' (col %d) and '%s' (col %d) differ only by whitespace/case",
					header[prev], prev+1, h, i+1))
			f.Line = dec.HeaderLine
			findings = append(findings, f)
		} else {
			normalized[norm] = i
		}
	}

	var reserved []string
	for i, h := range header {
		if reservedHeaderNames[strings.ToLower(h)] {
			reserved = append(reserved, fmt.Sprintf("(%d, '%s')", i+1, h))
		}
	}
	if len(reserved) > 0 {
		f := report.NewWarning(report.CategoryHeader,
			fmt.Sprintf("Potentially problematic header names: [%s]", strings.Join(reserved, ", ")))
		f.Line = dec.HeaderLine
		findings = append(findings, f)
	}

	return findings
}

// duplicateNames renders exact duplicates (blank names excluded) as
// "{'name': count, ...}" in first-appearance order, or "" when none exist
func duplicateNames(header []string) string {
	counts := make(map[string]int)
	var order []string
	for _, h := range header {
		if counts[h] == 0 {
			order = append(order, h)
		}
		counts[h]++
	}
	var parts []string
	for _, h := range order {
		if counts[h] > 1 && strings.TrimSpace(h) != "" {
			parts = append(parts, fmt.Sprintf("'%s': %d", h, counts[h]))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// columnCountFindings groups mismatched rows by their observed count. Each
// group becomes one error listing affected lines, display-truncated while the
// true count is retained. Preamble rows are skipped here only.
func columnCountFindings(rows [][]string, dec Decision) []report.Finding {
	byCount := make(map[int][]int)
	var order []int
	for i, row := range rows {
		if dec.Promoted && i < dec.MetadataRows {
			continue
		}
		if len(row) != dec.ExpectedColumns {
			if byCount[len(row)] == nil {
				order = append(order, len(row))
			}
			byCount[len(row)] = append(byCount[len(row)], i+1)
		}
	}

	var findings []report.Finding
	for _, count := range order {
		lines := byCount[count]
		f := report.NewError(report.CategoryStructure,
			fmt.Sprintf("Rows with %d columns (expected %d): lines %s",
				count, dec.ExpectedColumns, report.JoinInts(lines, lineListSample)))
		f.Count = len(lines)
		findings = append(findings, f)
	}
	return findings
}

func emptyRowFindings(rows [][]string) []report.Finding {
	var emptyLines []int
	for i, row := range rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			emptyLines = append(emptyLines, i+1)
		}
	}
	if len(emptyLines) == 0 {
		return nil
	}
	f := report.NewWarning(report.CategoryContent,
		fmt.Sprintf("Empty rows found at lines: %s", report.JoinInts(emptyLines, lineListSample)))
	f.Count = len(emptyLines)
	return []report.Finding{f}
}

// Duplicates flags exact field-sequence duplicates among data rows, header
// excluded. One warning carries the total duplicate count and the number of
// distinct repeated patterns.
func Duplicates(rows [][]string) []report.Finding {
	if len(rows) < 2 {
		return nil
	}

	counts := make(map[string]int)
	for _, row := range rows[1:] {
		counts[rowKey(row)]++
	}

	totalDups := 0
	patterns := 0
	for _, c := range counts {
		if c > 1 {
			totalDups += c - 1
			patterns++
		}
	}
	if totalDups == 0 {
		return nil
	}
	return []report.Finding{report.NewWarning(report.CategoryDuplicates,
		fmt.Sprintf("Found %d duplicate rows (%d unique patterns repeated)", totalDups, patterns))}
}

// rowKey builds a collision-safe key for an exact field sequence
func rowKey(row []string) string {
	var b strings.Builder
	for _, cell := range row {
		fmt.Fprintf(&b, "%d:%s\x1f", len(cell), cell)
	}
	return b.String()
}

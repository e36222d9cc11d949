/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Content analysis for the Akaylee CSV Lint engine. Runs after the structural
analyzer resolves the header: whitespace hygiene, quoting smells, per-column type mixing,
missing-value token usage, problematic special characters, and oversized fields. All
checks aggregate with sample locations and keep true counts.
*/

package content

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
	"github.com/kleascm/akaylee-csvlint/pkg/structure"
)

const (
	whitespaceSample = 10
	specialSample    = 5
	longFieldSample  = 10

	// MaxFieldLength is the threshold above which a field is flagged
	MaxFieldLength = 10000

	// highMissingRate is the per-column missing fraction that triggers a warning
	highMissingRate = 0.5

	fieldSampleRunes = 50
)

// nullTokens is the fixed recognized-null set. The empty string is handled
// separately so it can be reported as "(empty)".
var nullTokens = map[string]bool{
	"":     true,
	"null": true, "NULL": true,
	"None": true, "none": true,
	"NA": true, "N/A": true, "n/a": true, "#N/A": true,
	"NaN": true, "nan": true,
	"-": true, "--": true,
}

// Whitespace flags cells with leading or trailing whitespace, aggregated
// with sample locations
func Whitespace(rows [][]string) []report.Finding {
	var leading, trailing []report.CellRef
	for i, row := range rows {
		for j, cell := range row {
			if cell != strings.TrimLeftFunc(cell, unicode.IsSpace) {
				leading = append(leading, report.CellRef{Line: i + 1, Column: j + 1})
			}
			if cell != strings.TrimRightFunc(cell, unicode.IsSpace) {
				trailing = append(trailing, report.CellRef{Line: i + 1, Column: j + 1})
			}
		}
	}

	var findings []report.Finding
	if len(leading) > 0 {
		f := report.NewWarning(report.CategoryWhitespace,
			fmt.Sprintf("Cells with leading whitespace: %d occurrences (e.g., %s)",
				len(leading), report.JoinRefs(leading, whitespaceSample)))
		f.Count = len(leading)
		findings = append(findings, f)
	}
	if len(trailing) > 0 {
		f := report.NewWarning(report.CategoryWhitespace,
			fmt.Sprintf("Cells with trailing whitespace: %d occurrences (e.g., %s)",
				len(trailing), report.JoinRefs(trailing, whitespaceSample)))
		f.Count = len(trailing)
		findings = append(findings, f)
	}
	return findings
}

// Quoting inspects raw physical lines for quoting smells. An odd quote count
// is flagged per line, then each line is re-split on a literal comma and any
// piece with an unbracketed quote is flagged. The comma re-split is a generic
// smell test, deliberately independent of the detected delimiter, so it can
// misfire on quoted commas in non-comma files. Best-effort only.
func Quoting(lines []string) []report.Finding {
	var findings []report.Finding

	for i, line := range lines {
		if n := strings.Count(line, `"`); n%2 != 0 {
			// Could be legitimate escaped quoting, still worth surfacing
			f := report.NewWarning(report.CategoryQuoting, fmt.Sprintf("Odd number of quotes (%d)", n))
			f.Line = i + 1
			findings = append(findings, f)
		}
	}

	for i, line := range lines {
		if strings.Contains(line, `""`) || !strings.Contains(line, `"`) {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			stripped := strings.TrimSpace(part)
			if strings.Contains(stripped, `"`) &&
				!(strings.HasPrefix(stripped, `"`) && strings.HasSuffix(stripped, `"`)) {
				f := report.NewWarning(report.CategoryQuoting, "Potential unescaped quote in field")
				f.Line = i + 1
				f.FieldSample = truncateRunes(stripped, fieldSampleRunes)
				findings = append(findings, f)
				break
			}
		}
	}

	return findings
}

// cellClasses in fixed classification and display order
var cellClasses = []string{"numeric", "date", "boolean", "text"}

// DataTypes warns when a column's non-empty cells span more than one class.
// Cells classify, in order, as empty, numeric, date, boolean-like or text.
func DataTypes(rows [][]string, dec structure.Decision) []report.Finding {
	if len(rows) < 2 {
		return nil
	}

	var findings []report.Finding
	for colIdx := 0; colIdx < len(dec.Header); colIdx++ {
		classCounts := make(map[string]int)
		for _, row := range rows[1:] {
			if colIdx >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[colIdx])
			classCounts[classify(cell)]++
		}

		var summary []string
		mixed := 0
		for _, class := range cellClasses {
			if classCounts[class] > 0 {
				mixed++
				summary = append(summary, fmt.Sprintf("'%s': %d", class, classCounts[class]))
			}
		}
		if mixed > 1 {
			f := report.NewWarning(report.CategoryDataType,
				fmt.Sprintf("Mixed data types in column '%s': {%s}",
					columnName(dec.Header, colIdx), strings.Join(summary, ", ")))
			f.Column = colIdx + 1
			findings = append(findings, f)
		}
	}
	return findings
}

// MissingValues counts recognized-null tokens per column. More than one
// spelling file-wide is a consistency warning; a column above the missing
// threshold gets a rate warning.
func MissingValues(rows [][]string, dec structure.Decision) []report.Finding {
	if len(rows) < 2 {
		return nil
	}

	type colMissing struct {
		name      string
		count     int
		spellings map[string]bool
	}

	var affected []colMissing
	allSpellings := make(map[string]bool)

	for colIdx := 0; colIdx < len(dec.Header); colIdx++ {
		cm := colMissing{name: columnName(dec.Header, colIdx), spellings: make(map[string]bool)}
		for _, row := range rows[1:] {
			if colIdx >= len(row) {
				cm.count++
				continue
			}
			cell := strings.TrimSpace(row[colIdx])
			if nullTokens[cell] {
				cm.count++
				spelling := cell
				if spelling == "" {
					spelling = "(empty)"
				}
				cm.spellings[spelling] = true
				allSpellings[spelling] = true
			}
		}
		if cm.count > 0 {
			affected = append(affected, cm)
		}
	}

	if len(affected) == 0 {
		return nil
	}

	var findings []report.Finding
	if len(allSpellings) > 1 {
		spellings := make([]string, 0, len(allSpellings))
		for s := range allSpellings {
			spellings = append(spellings, fmt.Sprintf("'%s'", s))
		}
		sort.Strings(spellings)
		names := make([]string, len(affected))
		for i, cm := range affected {
			names[i] = cm.name
		}
		f := report.NewWarning(report.CategoryMissingValues,
			fmt.Sprintf("Inconsistent null value representations used: [%s]", strings.Join(spellings, ", ")))
		f.Columns = names
		findings = append(findings, f)
	}

	dataRows := len(rows) - 1
	for _, cm := range affected {
		rate := float64(cm.count) / float64(dataRows)
		if rate > highMissingRate {
			findings = append(findings, report.NewWarning(report.CategoryMissingValues,
				fmt.Sprintf("Column '%s' has %.1f%% missing values (%d/%d)",
					cm.name, rate*100, cm.count, dataRows)))
		}
	}
	return findings
}

// specialChar pairs a problematic code point with its display name
type specialChar struct {
	char rune
	name string
}

var specialChars = []specialChar{
	{'\r', "carriage return (not in line ending)"},
	{'\v', "vertical tab"},
	{'\f', "form feed"},
	{'\u00a0', "non-breaking space"},
	{'\u2028', "line separator"},
	{'\u2029', "paragraph separator"},
}

// SpecialChars scans every cell for the fixed problematic code-point set,
// aggregated by name with sample locations. Literal tabs are flagged only
// when the file is not itself tab-delimited.
func SpecialChars(rows [][]string, isTSV bool) []report.Finding {
	charset := specialChars
	if !isTSV {
		charset = append(append([]specialChar{}, specialChars...),
			specialChar{'\t', "tab (consider using TSV format)"})
	}

	byName := make(map[string][]report.CellRef)
	var order []string
	for i, row := range rows {
		for j, cell := range row {
			for _, sc := range charset {
				if strings.ContainsRune(cell, sc.char) {
					if byName[sc.name] == nil {
						order = append(order, sc.name)
					}
					byName[sc.name] = append(byName[sc.name], report.CellRef{Line: i + 1, Column: j + 1})
				}
			}
		}
	}

	var findings []report.Finding
	for _, name := range order {
		locations := byName[name]
		f := report.NewWarning(report.CategorySpecialChars,
			fmt.Sprintf("Found '%s' in %d cells (e.g., %s)",
				name, len(locations), report.JoinRefs(locations, specialSample)))
		f.Count = len(locations)
		findings = append(findings, f)
	}
	return findings
}

// FieldLength flags fields over MaxFieldLength characters, keeping a small
// location sample and the true count. Length is in characters, so multibyte
// content is not penalized.
func FieldLength(rows [][]string) []report.Finding {
	var long []report.LongField
	for i, row := range rows {
		for j, cell := range row {
			if n := utf8.RuneCountInString(cell); n > MaxFieldLength {
				long = append(long, report.LongField{Line: i + 1, Column: j + 1, Length: n})
			}
		}
	}
	if len(long) == 0 {
		return nil
	}

	f := report.NewWarning(report.CategoryFieldLength,
		fmt.Sprintf("Found %d fields exceeding %d characters", len(long), MaxFieldLength))
	f.Count = len(long)
	if len(long) > longFieldSample {
		long = long[:longFieldSample]
	}
	f.Fields = long
	return []report.Finding{f}
}

// columnName falls back to a positional label when the header is too narrow
func columnName(header []string, colIdx int) string {
	if colIdx < len(header) {
		return header[colIdx]
	}
	return fmt.Sprintf("Column %d", colIdx+1)
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Row parsing for the Akaylee CSV Lint engine. Decodes the full text into
rows with the detected dialect using standard doubled-quote escaping. Blank physical
lines become zero-field rows so line numbers stay aligned and the structural checks
can flag them. Parsing never aborts the run: a failure yields one parsing finding and
every row produced before the failure is retained.
*/

package rows

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/akaylee-csvlint/pkg/dialect"
	"github.com/kleascm/akaylee-csvlint/pkg/report"
)

// RowSet holds the parsed rows of one document. Row positions are 1-indexed
// and track physical lines, with one known exception: a quoted field spanning
// physical lines collapses into a single row, so every later row's reported
// line number runs ahead of the source by the extra lines it consumed.
type RowSet struct {
	Rows   [][]string // All parsed rows, header included; blank lines are zero-field rows
	Header []string   // Provisional header: row 0; structure analysis may promote another row
}

// Parse decodes text into rows using the dialect. Ragged rows are accepted
// as-is, quotes use doubled-quote escaping, and delimiters or newlines inside
// quoted fields are literal. The csv reader skips blank physical lines, so
// they are re-synthesized as zero-field rows to keep row positions aligned
// with the source. A parse failure emits one parsing error and keeps whatever
// rows were produced.
func Parse(text string, d dialect.Dialect) (*RowSet, []report.Finding) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = d.Delimiter
	reader.FieldsPerRecord = -1 // Ragged rows are findings, not parse failures
	reader.LazyQuotes = true    // Malformed quoting degrades to quoting findings

	rs := &RowSet{}
	var findings []report.Finding

	failed := false
	nextLine := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			findings = append(findings, report.NewError(report.CategoryParsing,
				fmt.Sprintf("CSV parsing error: %v", err)))
			failed = true
			break
		}

		// Lines the reader skipped before this record were blank
		start, _ := reader.FieldPos(0)
		for ; nextLine < start; nextLine++ {
			rs.Rows = append(rs.Rows, []string{})
		}

		rs.Rows = append(rs.Rows, record)
		nextLine = start + recordSpan(record)
	}

	// Trailing blank lines never yield a record either
	if !failed {
		for total := countLines(text); nextLine <= total; nextLine++ {
			rs.Rows = append(rs.Rows, []string{})
		}
	}

	if len(rs.Rows) > 0 {
		rs.Header = rs.Rows[0]
	}
	return rs, findings
}

// recordSpan is how many physical lines a record consumed: one, plus any
// newlines carried inside quoted fields
func recordSpan(record []string) int {
	span := 1
	for _, field := range record {
		span += strings.Count(field, "\n")
	}
	return span
}

// countLines counts physical lines the way the csv reader numbers them:
// newline-terminated, plus an unterminated final line
func countLines(text string) int {
	n := strings.Count(text, "\n")
	if len(text) > 0 && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

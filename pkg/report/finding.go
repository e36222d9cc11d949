/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: finding.go
Description: Finding types for the Akaylee CSV Lint engine. Defines the closed category
and severity enums and the structured extras each check attaches to its findings.
Findings are append-only and emitted in a fixed check order, so reports are deterministic.
*/

package report

import (
	"fmt"
	"strings"
)

// Severity marks a finding as blocking (error) or advisory (warning).
// Severity is fixed per check and never configurable.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category is the closed taxonomy of validation findings
type Category string

const (
	CategoryFile          Category = "file"
	CategoryEncoding      Category = "encoding"
	CategoryFormat        Category = "format"
	CategoryParsing       Category = "parsing"
	CategoryHeader        Category = "header"
	CategoryStructure     Category = "structure"
	CategoryContent       Category = "content"
	CategoryWhitespace    Category = "whitespace"
	CategoryQuoting       Category = "quoting"
	CategoryDataType      Category = "data_type"
	CategoryMissingValues Category = "missing_values"
	CategoryDuplicates    Category = "duplicates"
	CategorySpecialChars  Category = "special_chars"
	CategoryFieldLength   Category = "field_length"
)

// CellRef identifies a single cell by row-parse line and 1-indexed column
type CellRef struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// LongField records the location and size of an oversized field
type LongField struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Length int `json:"length"`
}

// Finding represents one reported issue. The category is the discriminant for
// which structured extras are populated; everything else is omitted from JSON.
type Finding struct {
	Severity     Severity    `json:"-"`                       // List membership carries severity in the report
	Category     Category    `json:"category"`                // Closed enum, see Category constants
	Message      string      `json:"message"`                 // Human-readable description
	Line         int         `json:"line,omitempty"`          // 1-indexed parse-order line, 0 = not applicable
	Column       int         `json:"column,omitempty"`        // 1-indexed column, 0 = not applicable
	Suggestion   string      `json:"suggestion,omitempty"`    // Optional remediation hint
	Count        int         `json:"count,omitempty"`         // True occurrence count (samples may be truncated)
	FieldSample  string      `json:"field_sample,omitempty"`  // Offending field excerpt (quoting smells)
	MetadataRows int         `json:"metadata_rows,omitempty"` // Detected preamble size (structure)
	Columns      []string    `json:"columns,omitempty"`       // Affected column names (missing values)
	Fields       []LongField `json:"fields,omitempty"`        // Oversized field sample (field length)
}

// NewError creates an error-severity finding
func NewError(category Category, message string) Finding {
	return Finding{Severity: SeverityError, Category: category, Message: message}
}

// NewWarning creates a warning-severity finding
func NewWarning(category Category, message string) Finding {
	return Finding{Severity: SeverityWarning, Category: category, Message: message}
}

// JoinInts renders an int list as "[3, 7, 9]", truncated to max entries with a
// trailing "..." marker. The true count travels separately in Finding.Count.
func JoinInts(values []int, max int) string {
	shown := values
	truncated := false
	if len(shown) > max {
		shown = shown[:max]
		truncated = true
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = fmt.Sprintf("%d", v)
	}
	out := "[" + strings.Join(parts, ", ") + "]"
	if truncated {
		out += "..."
	}
	return out
}

// JoinRefs renders cell references as "[(1, 2), (3, 4)]", truncated to max entries
func JoinRefs(refs []CellRef, max int) string {
	shown := refs
	if len(shown) > max {
		shown = shown[:max]
	}
	parts := make([]string, len(shown))
	for i, r := range shown {
		parts[i] = fmt.Sprintf("(%d, %d)", r.Line, r.Column)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

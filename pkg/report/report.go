/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Validation report aggregation for the Akaylee CSV Lint engine. Collects the
ordered finding stream from all checks into a single deterministic report with summary
statistics, suitable for JSON embedding or text rendering.
*/

package report

// HeaderDisplayLimit caps how many header names the summary stats carry
const HeaderDisplayLimit = 50

// Stats summarizes the validated document
type Stats struct {
	TotalRows    int      `json:"total_rows"`    // Rows produced by the parser (header included)
	TotalColumns int      `json:"total_columns"` // Width of the final header
	Headers      []string `json:"headers"`       // Final header names, truncated for display
	Encoding     string   `json:"encoding"`      // Detected encoding label
	Delimiter    string   `json:"delimiter"`     // comma, tab, semicolon, pipe or unknown
	Format       string   `json:"format"`        // CSV or TSV
}

// ValidationReport is the complete result of validating one file.
// Errors and warnings preserve check emission order.
type ValidationReport struct {
	RunID        string    `json:"-"` // Correlates log lines, not part of the report contract
	File         string    `json:"file"`
	Valid        bool      `json:"valid"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	Errors       []Finding `json:"errors"`
	Warnings     []Finding `json:"warnings"`
	Stats        Stats     `json:"stats"`
}

// Build splits an ordered finding stream by severity and assembles the report.
// valid is true exactly when no error-severity findings exist.
func Build(file string, findings []Finding, stats Stats) *ValidationReport {
	r := &ValidationReport{
		File:     file,
		Errors:   make([]Finding, 0),
		Warnings: make([]Finding, 0),
		Stats:    stats,
	}
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			r.Errors = append(r.Errors, f)
		default:
			r.Warnings = append(r.Warnings, f)
		}
	}
	r.ErrorCount = len(r.Errors)
	r.WarningCount = len(r.Warnings)
	r.Valid = r.ErrorCount == 0
	if len(r.Stats.Headers) > HeaderDisplayLimit {
		r.Stats.Headers = r.Stats.Headers[:HeaderDisplayLimit]
	}
	if r.Stats.Headers == nil {
		r.Stats.Headers = []string{}
	}
	return r
}

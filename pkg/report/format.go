/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: format.go
Description: Human-readable projection of a validation report. Renders a banner, summary
statistics, grouped error and warning sections with location prefixes and suggestions,
and a closing status line. Silent (empty) for clean reports unless verbose is requested.
*/

package report

import (
	"fmt"
	"strings"
)

const (
	bannerWidth  = 60
	sectionWidth = 40
)

// FormatText renders the report for terminal display. A clean report renders
// to the empty string unless alwaysShow is set, so callers can pass silently.
func FormatText(r *ValidationReport, alwaysShow bool) string {
	if r.Valid && r.WarningCount == 0 && !alwaysShow {
		return ""
	}

	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("─", sectionWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "CSV VALIDATION REPORT: %s\n", r.File)
	fmt.Fprintf(&b, "%s\n", banner)

	if r.Stats.TotalRows > 0 {
		parts := []string{
			fmt.Sprintf("Rows: %d", r.Stats.TotalRows),
			fmt.Sprintf("Columns: %d", r.Stats.TotalColumns),
		}
		if r.Stats.Encoding != "" {
			parts = append(parts, fmt.Sprintf("Encoding: %s", r.Stats.Encoding))
		}
		if r.Stats.Format != "" {
			parts = append(parts, fmt.Sprintf("Format: %s", r.Stats.Format))
		}
		if r.Stats.Delimiter != "" {
			parts = append(parts, fmt.Sprintf("Delimiter: %s", r.Stats.Delimiter))
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(parts, ", "))
	}

	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "ERRORS (%d):\n", r.ErrorCount)
		fmt.Fprintf(&b, "%s\n", rule)
		for _, f := range r.Errors {
			fmt.Fprintf(&b, "  ✗ [%s]%s: %s\n", f.Category, location(f), f.Message)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "WARNINGS (%d):\n", r.WarningCount)
		fmt.Fprintf(&b, "%s\n", rule)
		for _, f := range r.Warnings {
			fmt.Fprintf(&b, "  ⚠ [%s]%s: %s\n", f.Category, location(f), f.Message)
			if f.Suggestion != "" {
				fmt.Fprintf(&b, "    → %s\n", f.Suggestion)
			}
		}
	}

	if alwaysShow && len(r.Stats.Headers) > 0 {
		fmt.Fprintf(&b, "\n%s\n", rule)
		b.WriteString("COLUMNS:\n")
		fmt.Fprintf(&b, "%s\n", rule)
		for i, h := range r.Stats.Headers {
			fmt.Fprintf(&b, "  %3d. %s\n", i+1, h)
		}
		if r.Stats.TotalColumns > HeaderDisplayLimit {
			fmt.Fprintf(&b, "  ... (%d more columns)\n", r.Stats.TotalColumns-HeaderDisplayLimit)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "Status: %s\n", statusLabel(r))
	fmt.Fprintf(&b, "%s\n", banner)

	return b.String()
}

// location formats the optional "[line N, col M]" prefix for a finding
func location(f Finding) string {
	if f.Line == 0 {
		return ""
	}
	if f.Column != 0 {
		return fmt.Sprintf(" [line %d, col %d]", f.Line, f.Column)
	}
	return fmt.Sprintf(" [line %d]", f.Line)
}

func statusLabel(r *ValidationReport) string {
	switch {
	case r.ErrorCount > 0:
		return "INVALID"
	case r.WarningCount > 0:
		return "VALID (with warnings)"
	default:
		return "VALID"
	}
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validator.go
Description: Validation engine for Akaylee CSV Lint. Orchestrates the full pipeline:
bytes to decoded document, early text checks, dialect detection, row parsing, structural
analysis, content analysis, and report assembly. Each check is a pure function returning
findings; this engine owns ordering and merging, so reports are deterministic and no
state survives a run.
*/

package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-csvlint/pkg/content"
	"github.com/kleascm/akaylee-csvlint/pkg/dialect"
	"github.com/kleascm/akaylee-csvlint/pkg/encoding"
	"github.com/kleascm/akaylee-csvlint/pkg/logging"
	"github.com/kleascm/akaylee-csvlint/pkg/report"
	"github.com/kleascm/akaylee-csvlint/pkg/rows"
	"github.com/kleascm/akaylee-csvlint/pkg/structure"
)

// Engine validates CSV/TSV files. Stateless across runs; safe to reuse.
type Engine struct {
	log *logging.Logger
}

// NewEngine creates a validation engine. A nil logger disables logging.
func NewEngine(log *logging.Logger) *Engine {
	return &Engine{log: log}
}

// ValidateFile reads and validates one file. File access problems produce a
// fatal single-finding report; the target file is never modified.
func (e *Engine) ValidateFile(path string) *report.ValidationReport {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return e.fatal(path, report.NewError(report.CategoryFile,
				fmt.Sprintf("File does not exist: %s", path)))
		}
		return e.fatal(path, report.NewError(report.CategoryFile,
			fmt.Sprintf("Error reading file: %v", err)))
	}
	if !info.Mode().IsRegular() {
		return e.fatal(path, report.NewError(report.CategoryFile,
			fmt.Sprintf("Path is not a file: %s", path)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return e.fatal(path, report.NewError(report.CategoryFile,
				fmt.Sprintf("File is not readable: %s", path)))
		}
		return e.fatal(path, report.NewError(report.CategoryFile,
			fmt.Sprintf("Error reading file: %v", err)))
	}

	return e.ValidateBytes(path, data)
}

// ValidateBytes validates raw file content. Always returns a complete report;
// only total decode failure short-circuits the check sequence.
func (e *Engine) ValidateBytes(path string, data []byte) *report.ValidationReport {
	runID := uuid.New().String()

	doc, findings, err := encoding.Decode(data)
	if err != nil {
		return e.fatal(path, report.NewError(report.CategoryEncoding, err.Error()))
	}
	e.logf("document decoded", map[string]interface{}{
		"run_id": runID, "file": path, "encoding": doc.Encoding, "bytes": len(data),
	})

	findings = append(findings, encoding.TextFindings(doc)...)

	// A whitespace-only document has nothing for the remaining checks to
	// work on; report the one content error instead of cascading phantom
	// header and structure findings.
	if strings.TrimSpace(doc.Text) == "" {
		findings = append(findings, report.NewError(report.CategoryContent,
			"File is empty or contains only whitespace"))
		rep := report.Build(path, findings, report.Stats{
			Encoding:  doc.Encoding,
			Delimiter: "unknown",
			Format:    "CSV",
		})
		rep.RunID = runID
		e.logReport(rep)
		return rep
	}

	d, dialectFindings := dialect.Detect(doc.Text)
	findings = append(findings, dialectFindings...)

	rs, parseFindings := rows.Parse(doc.Text, d)
	findings = append(findings, parseFindings...)

	dec := structure.Resolve(rs.Rows)
	findings = append(findings, structure.Analyze(rs.Rows, dec)...)

	findings = append(findings, content.Whitespace(rs.Rows)...)
	findings = append(findings, content.Quoting(doc.Lines)...)
	findings = append(findings, content.DataTypes(rs.Rows, dec)...)
	findings = append(findings, content.MissingValues(rs.Rows, dec)...)
	findings = append(findings, structure.Duplicates(rs.Rows)...)
	findings = append(findings, content.SpecialChars(rs.Rows, d.IsTSV)...)
	findings = append(findings, content.FieldLength(rs.Rows)...)

	rep := report.Build(path, findings, report.Stats{
		TotalRows:    len(rs.Rows),
		TotalColumns: len(dec.Header),
		Headers:      append([]string{}, dec.Header...),
		Encoding:     doc.Encoding,
		Delimiter:    d.Name(),
		Format:       d.FormatLabel(),
	})
	rep.RunID = runID
	e.logReport(rep)
	return rep
}

// fatal builds the single-finding report used for unreadable or undecodable
// input. The run stops immediately; no other checks contribute.
func (e *Engine) fatal(path string, f report.Finding) *report.ValidationReport {
	rep := report.Build(path, []report.Finding{f}, report.Stats{
		Delimiter: "unknown",
		Format:    "CSV",
	})
	rep.RunID = uuid.New().String()
	e.logReport(rep)
	return rep
}

func (e *Engine) logReport(rep *report.ValidationReport) {
	e.logf("validation complete", map[string]interface{}{
		"run_id":   rep.RunID,
		"file":     rep.File,
		"valid":    rep.Valid,
		"errors":   rep.ErrorCount,
		"warnings": rep.WarningCount,
	})
}

func (e *Engine) logf(msg string, fields map[string]interface{}) {
	if e.log == nil {
		return
	}
	e.log.Debug(msg, fields)
}

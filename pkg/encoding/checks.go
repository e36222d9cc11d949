/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: checks.go
Description: Early text-level checks that run right after decoding: stray null bytes,
replacement characters left by lossy decodes, UTF-8 BOM presence, and inconsistent
line endings. Pure functions of the decoded document.
*/

package encoding

import (
	"fmt"
	"strings"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
)

const nullPositionSample = 10

// TextFindings runs the early checks against a decoded document. Emission
// order is fixed: null bytes, replacement characters, BOM, line endings.
func TextFindings(doc *Document) []report.Finding {
	var findings []report.Finding

	// Null bytes surviving a non-UTF-16 decode mean the byte-pattern probe
	// missed a multibyte encoding; with a correct UTF-16 decode none remain.
	if strings.ContainsRune(doc.Text, 0x00) && !strings.HasPrefix(doc.Encoding, "utf-16") {
		var positions []int
		idx := 0
		for _, r := range doc.Text {
			if r == 0x00 {
				positions = append(positions, idx)
			}
			idx++
		}
		f := report.NewError(report.CategoryEncoding,
			fmt.Sprintf("File contains null bytes at positions: %s", report.JoinInts(positions, nullPositionSample)))
		f.Count = len(positions)
		f.Suggestion = "This may indicate UTF-16 encoding read as single-byte encoding"
		findings = append(findings, f)
	}

	if n := strings.Count(doc.Text, "�"); n > 0 {
		findings = append(findings, report.NewError(report.CategoryEncoding,
			fmt.Sprintf("File contains %d replacement characters (encoding errors)", n)))
	}

	if strings.HasPrefix(doc.Text, "\uFEFF") {
		f := report.NewWarning(report.CategoryEncoding, "File contains UTF-8 BOM (Byte Order Mark)")
		f.Line = 1
		findings = append(findings, f)
	}

	if f, mixed := lineEndingFinding(doc.Text); mixed {
		findings = append(findings, f)
	}

	return findings
}

// lineEndingFinding reports when more than one line-ending convention appears
func lineEndingFinding(text string) (report.Finding, bool) {
	crlf := strings.Count(text, "\r\n")
	lfOnly := strings.Count(text, "\n") - crlf
	crOnly := strings.Count(text, "\r") - crlf

	var endings []string
	if crlf > 0 {
		endings = append(endings, fmt.Sprintf("CRLF (%d)", crlf))
	}
	if lfOnly > 0 {
		endings = append(endings, fmt.Sprintf("LF (%d)", lfOnly))
	}
	if crOnly > 0 {
		endings = append(endings, fmt.Sprintf("CR (%d)", crOnly))
	}

	if len(endings) <= 1 {
		return report.Finding{}, false
	}
	return report.NewWarning(report.CategoryFormat,
		fmt.Sprintf("Inconsistent line endings detected: %s", strings.Join(endings, ", "))), true
}

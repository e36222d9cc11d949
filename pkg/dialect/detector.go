/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector.go
Description: Dialect detection for the Akaylee CSV Lint engine. Scores candidate
delimiters over a sample of non-blank lines by per-line count consistency and coverage,
tolerating a minority of non-conforming preamble lines that would break naive sniffing.
Falls back to a priority sniff, then to comma as last resort.
*/

package dialect

import (
	"strings"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
)

// SampleLimit is how many decoded characters detection examines
const SampleLimit = 8192

// Scoring constants. These values decide detection outcomes on ambiguous
// input and must not change.
const (
	maxCandidateLines   = 30
	perfectScoreFactor  = 100.0
	variantScoreFactor  = 10.0
	tabBonusFactor      = 2.0
	tabBonusMinAvgCount = 3.0
	minAcceptScore      = 1.0
)

// candidateDelimiters in fixed priority order
var candidateDelimiters = []rune{',', '\t', ';', '|'}

// Dialect describes how a delimited file is tokenized
type Dialect struct {
	Delimiter rune // Field separator
	Quote     rune // Quote character, always '"' with doubled-quote escaping
	IsTSV     bool // Set when the winning delimiter is tab
}

// Name returns the report label for the delimiter
func (d Dialect) Name() string {
	switch d.Delimiter {
	case ',':
		return "comma"
	case '\t':
		return "tab"
	case ';':
		return "semicolon"
	case '|':
		return "pipe"
	case 0:
		return "unknown"
	}
	return string(d.Delimiter)
}

// FormatLabel returns "TSV" or "CSV" for the summary stats
func (d Dialect) FormatLabel() string {
	if d.IsTSV {
		return "TSV"
	}
	return "CSV"
}

// Detect infers the dialect from the first SampleLimit characters of text.
// Always returns a usable dialect; ambiguity degrades to warnings, not errors.
func Detect(text string) (Dialect, []report.Finding) {
	sample := truncateRunes(text, SampleLimit)

	if delim, ok := scoreDelimiters(sample); ok {
		return buildDialect(delim)
	}

	// Generic priority sniff over the first line carrying any candidate
	if delim, ok := sniffFirstLine(sample); ok {
		d, findings := buildDialect(delim)
		return d, findings
	}

	// Last resort: assume comma
	f := report.NewWarning(report.CategoryFormat, "Could not auto-detect CSV dialect, assuming comma-separated")
	return Dialect{Delimiter: ',', Quote: '"'}, []report.Finding{f}
}

func buildDialect(delim rune) (Dialect, []report.Finding) {
	d := Dialect{Delimiter: delim, Quote: '"'}
	if delim == '\t' {
		d.IsTSV = true
		f := report.NewWarning(report.CategoryFormat, "Detected tab-separated values (TSV) format")
		f.Suggestion = "File extension is .csv but content is tab-delimited"
		return d, []report.Finding{f}
	}
	return d, nil
}

// scoreDelimiters runs the consistency/coverage scoring over candidate lines.
// Lines containing at least one candidate delimiter are preferred so metadata
// preambles do not dominate the sample.
func scoreDelimiters(sample string) (rune, bool) {
	allLines := strings.Split(sample, "\n")

	var candidateLines []string
	for _, line := range allLines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.ContainsAny(stripped, ",\t;|") {
			candidateLines = append(candidateLines, stripped)
		}
		if len(candidateLines) >= maxCandidateLines {
			break
		}
	}

	if len(candidateLines) < 2 {
		candidateLines = candidateLines[:0]
		for _, line := range allLines {
			if stripped := strings.TrimSpace(line); stripped != "" {
				candidateLines = append(candidateLines, stripped)
			}
			if len(candidateLines) >= maxCandidateLines {
				break
			}
		}
	}
	if len(candidateLines) < 2 {
		return 0, false
	}

	var best rune
	bestScore := -1.0

	for _, delim := range candidateDelimiters {
		counts := make([]int, len(candidateLines))
		var nonZero []int
		for i, line := range candidateLines {
			counts[i] = strings.Count(line, string(delim))
			if counts[i] > 0 {
				nonZero = append(nonZero, counts[i])
			}
		}
		if len(nonZero) < 2 {
			continue
		}

		coverage := float64(len(nonZero)) / float64(len(counts))

		var score float64
		if allEqual(nonZero) {
			// Perfect consistency is a strong signal
			score = float64(nonZero[0]) * perfectScoreFactor * coverage
		} else {
			avg := mean(nonZero)
			variance := 0.0
			for _, c := range nonZero {
				d := float64(c) - avg
				variance += d * d
			}
			variance /= float64(len(nonZero))
			consistency := 1.0 / (1.0 + variance)
			score = avg * consistency * coverage * variantScoreFactor
		}

		// Many tabs per line is a strong TSV signal
		if delim == '\t' && mean(nonZero) >= tabBonusMinAvgCount {
			score *= tabBonusFactor
		}

		if score > bestScore {
			bestScore = score
			best = delim
		}
	}

	if bestScore > minAcceptScore {
		return best, true
	}
	return 0, false
}

// sniffFirstLine picks the first candidate, in priority order, that appears
// on the first delimiter-bearing line of the sample
func sniffFirstLine(sample string) (rune, bool) {
	for _, line := range strings.Split(sample, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || !strings.ContainsAny(stripped, ",\t;|") {
			continue
		}
		for _, delim := range candidateDelimiters {
			if strings.ContainsRune(stripped, delim) {
				return delim, true
			}
		}
	}
	return 0, false
}

func allEqual(counts []int) bool {
	for _, c := range counts[1:] {
		if c != counts[0] {
			return false
		}
	}
	return true
}

func mean(counts []int) float64 {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	return float64(sum) / float64(len(counts))
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

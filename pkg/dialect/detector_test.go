/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector_test.go
Description: Unit tests for dialect detection. Covers the consistency scoring for each
candidate delimiter, preamble tolerance, the TSV warning, the priority sniff and the
comma last resort.
*/

package dialect_test

import (
	"testing"

	"github.com/kleascm/akaylee-csvlint/pkg/dialect"
	"github.com/kleascm/akaylee-csvlint/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiters(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		delimiter rune
	}{
		{"comma", "a,b,c\n1,2,3\n4,5,6\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n4;5;6\n", ';'},
		{"pipe", "a|b|c\n1|2|3\n4|5|6\n", '|'},
		{"tab", "a\tb\tc\n1\t2\t3\n4\t5\t6\n", '\t'},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := dialect.Detect(tc.text)
			assert.Equal(t, tc.delimiter, d.Delimiter)
			assert.Equal(t, '"', d.Quote)
		})
	}
}

func TestDetectTSVWarning(t *testing.T) {
	d, findings := dialect.Detect("a\tb\tc\tdd\n1\t2\t3\t4\n5\t6\t7\t8\n")
	assert.True(t, d.IsTSV)
	assert.Equal(t, "tab", d.Name())
	assert.Equal(t, "TSV", d.FormatLabel())

	require.Len(t, findings, 1)
	assert.Equal(t, report.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "Detected tab-separated values (TSV) format", findings[0].Message)
	assert.Equal(t, "File extension is .csv but content is tab-delimited", findings[0].Suggestion)
}

func TestDetectTolerantOfPreamble(t *testing.T) {
	// Metadata lines without delimiters are excluded from the candidate set
	text := "Sales Report 2024\nGenerated by exporter\n\nname,region,total\nalice,north,10\nbob,south,20\n"
	d, findings := dialect.Detect(text)
	assert.Equal(t, ',', d.Delimiter)
	assert.False(t, d.IsTSV)
	assert.Empty(t, findings)
}

func TestDetectCommaLastResort(t *testing.T) {
	d, findings := dialect.Detect("hello\nworld\nthree lines no delimiters\n")
	assert.Equal(t, ',', d.Delimiter)
	assert.Equal(t, "comma", d.Name())
	assert.Equal(t, "CSV", d.FormatLabel())

	require.Len(t, findings, 1)
	assert.Equal(t, "Could not auto-detect CSV dialect, assuming comma-separated", findings[0].Message)
}

func TestDetectSniffSingleDataLine(t *testing.T) {
	// One delimiter-bearing line is below the scoring minimum, so the
	// priority sniff decides
	d, findings := dialect.Detect("a;b;c\n")
	assert.Equal(t, ';', d.Delimiter)
	assert.Empty(t, findings)
}

func TestDialectName(t *testing.T) {
	assert.Equal(t, "comma", dialect.Dialect{Delimiter: ','}.Name())
	assert.Equal(t, "semicolon", dialect.Dialect{Delimiter: ';'}.Name())
	assert.Equal(t, "pipe", dialect.Dialect{Delimiter: '|'}.Name())
	assert.Equal(t, "unknown", dialect.Dialect{}.Name())
}

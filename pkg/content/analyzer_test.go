/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer_test.go
Description: Unit tests for content analysis. Covers whitespace hygiene, quoting smells,
type-mixing detection, missing-value accounting, special characters and oversized fields.
*/

package content_test

import (
	"strings"
	"testing"

	"github.com/kleascm/akaylee-csvlint/pkg/content"
	"github.com/kleascm/akaylee-csvlint/pkg/report"
	"github.com/kleascm/akaylee-csvlint/pkg/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespace(t *testing.T) {
	rows := [][]string{
		{"name", "city"},
		{" alice", "paris "},
		{"bob", " london "},
	}
	findings := content.Whitespace(rows)
	require.Len(t, findings, 2)

	assert.Equal(t, "Cells with leading whitespace: 2 occurrences (e.g., [(2, 1), (3, 2)])", findings[0].Message)
	assert.Equal(t, 2, findings[0].Count)
	assert.Equal(t, "Cells with trailing whitespace: 2 occurrences (e.g., [(2, 2), (3, 2)])", findings[1].Message)

	assert.Empty(t, content.Whitespace([][]string{{"a", "b"}, {"1", "2"}}))
}

func TestQuotingOddQuotes(t *testing.T) {
	lines := []string{"a,b\n", "1,\"unterminated\n", "3,4\n"}
	findings := content.Quoting(lines)
	require.NotEmpty(t, findings)
	assert.Equal(t, "Odd number of quotes (1)", findings[0].Message)
	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, report.CategoryQuoting, findings[0].Category)
}

func TestQuotingUnescapedQuote(t *testing.T) {
	lines := []string{"a,b\n", "val\"ue,2\n"}
	findings := content.Quoting(lines)

	var unescaped []report.Finding
	for _, f := range findings {
		if f.Message == "Potential unescaped quote in field" {
			unescaped = append(unescaped, f)
		}
	}
	require.Len(t, unescaped, 1)
	assert.Equal(t, 2, unescaped[0].Line)
	assert.Equal(t, `val"ue`, unescaped[0].FieldSample)
}

func TestQuotingSkipsEscapedQuotes(t *testing.T) {
	// Doubled quotes are well-formed escaping; the line is left alone
	lines := []string{"a,b\n", "\"she said \"\"hi\"\"\",2\n"}
	for _, f := range content.Quoting(lines) {
		assert.NotEqual(t, "Potential unescaped quote in field", f.Message)
	}
}

func TestDataTypesMixedColumn(t *testing.T) {
	rows := [][]string{
		{"amount", "when"},
		{"1", "2024-01-02"},
		{"2", "2024-01-03"},
		{"abc", "2024-01-04"},
		{"3", "2024-01-05"},
	}
	dec := structure.Resolve(rows)
	findings := content.DataTypes(rows, dec)
	require.Len(t, findings, 1)
	assert.Equal(t, "Mixed data types in column 'amount': {'numeric': 3, 'text': 1}", findings[0].Message)
	assert.Equal(t, 1, findings[0].Column)
}

func TestDataTypesCleanColumns(t *testing.T) {
	rows := [][]string{
		{"n", "flag", "when"},
		{"1", "true", "01/02/2024"},
		{"2.5", "false", "03/04/2024"},
		{"1,200", "yes", "05/06/2024"}, // Thousands separators still count as numeric
	}
	dec := structure.Resolve(rows)
	assert.Empty(t, content.DataTypes(rows, dec))
}

func TestDataTypesIgnoresEmptyCells(t *testing.T) {
	rows := [][]string{
		{"n"},
		{"1"},
		{""},
		{"2"},
	}
	dec := structure.Resolve(rows)
	assert.Empty(t, content.DataTypes(rows, dec))
}

func TestMissingValuesInconsistentSpellings(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"1", "NA"},
		{"null", "2"},
		{"3", "4"},
		{"5", "6"},
	}
	dec := structure.Resolve(rows)
	findings := content.MissingValues(rows, dec)
	require.Len(t, findings, 1)
	assert.Equal(t, report.CategoryMissingValues, findings[0].Category)
	assert.Equal(t, "Inconsistent null value representations used: ['NA', 'null']", findings[0].Message)
	assert.Equal(t, []string{"a", "b"}, findings[0].Columns)
}

func TestMissingValuesHighRate(t *testing.T) {
	rows := [][]string{
		{"a"},
		{"NA"},
		{"NA"},
		{"NA"},
		{"1"},
	}
	dec := structure.Resolve(rows)
	findings := content.MissingValues(rows, dec)
	require.Len(t, findings, 1)
	assert.Equal(t, "Column 'a' has 75.0% missing values (3/4)", findings[0].Message)
}

func TestMissingValuesCountsShortRows(t *testing.T) {
	// A row too narrow to reach the column counts as missing there
	rows := [][]string{
		{"a", "b"},
		{"1"},
		{"2"},
		{"3", "x"},
	}
	dec := structure.Resolve(rows)
	findings := content.MissingValues(rows, dec)
	require.Len(t, findings, 1)
	assert.Equal(t, "Column 'b' has 66.7% missing values (2/3)", findings[0].Message)
}

func TestSpecialCharsTab(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"x\ty", "2"},
	}
	findings := content.SpecialChars(rows, false)
	require.Len(t, findings, 1)
	assert.Equal(t, "Found 'tab (consider using TSV format)' in 1 cells (e.g., [(2, 1)])", findings[0].Message)
	assert.Equal(t, 1, findings[0].Count)

	// Tabs are expected in a TSV file
	assert.Empty(t, content.SpecialChars(rows, true))
}

func TestSpecialCharsUnicode(t *testing.T) {
	rows := [][]string{
		{"a"},
		{"x y"},
		{"p q"},
	}
	findings := content.SpecialChars(rows, true)
	require.Len(t, findings, 2)
	assert.Equal(t, "Found 'non-breaking space' in 1 cells (e.g., [(2, 1)])", findings[0].Message)
	assert.Equal(t, "Found 'line separator' in 1 cells (e.g., [(3, 1)])", findings[1].Message)
}

func TestFieldLength(t *testing.T) {
	long := strings.Repeat("x", content.MaxFieldLength+1)
	rows := [][]string{
		{"a", "b"},
		{long, "2"},
	}
	findings := content.FieldLength(rows)
	require.Len(t, findings, 1)
	assert.Equal(t, "Found 1 fields exceeding 10000 characters", findings[0].Message)
	assert.Equal(t, 1, findings[0].Count)
	require.Len(t, findings[0].Fields, 1)
	assert.Equal(t, report.LongField{Line: 2, Column: 1, Length: content.MaxFieldLength + 1}, findings[0].Fields[0])

	assert.Empty(t, content.FieldLength([][]string{{"a"}, {"short"}}))
}

func TestFieldLengthCountsCharacters(t *testing.T) {
	// é is two bytes but one character: exactly at the cap stays unflagged
	atCap := strings.Repeat("é", content.MaxFieldLength)
	assert.Empty(t, content.FieldLength([][]string{{"a"}, {atCap}}))

	over := strings.Repeat("é", content.MaxFieldLength+1)
	findings := content.FieldLength([][]string{{"a"}, {over}})
	require.Len(t, findings, 1)
	assert.Equal(t, content.MaxFieldLength+1, findings[0].Fields[0].Length)
}

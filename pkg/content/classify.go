/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify.go
Description: Cell classification for per-column type consistency checks. Classifies a
trimmed cell as empty, numeric, date, boolean-like or text, in that priority order.
*/

package content

import (
	"regexp"
	"strconv"
	"strings"
)

// datePatterns are the five fixed shapes recognized as dates:
// ISO, US, EU, alternative ISO, and a flexible short form.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`),
	regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),
}

// booleanTokens are matched case-insensitively
var booleanTokens = map[string]bool{
	"true": true, "false": true,
	"yes": true, "no": true,
	"1": true, "0": true,
	"y": true, "n": true,
	"t": true, "f": true,
}

// classify buckets a trimmed cell. Numeric wins over boolean so "1"/"0"
// count as numbers, matching how spreadsheets export them.
func classify(cell string) string {
	switch {
	case cell == "":
		return "empty"
	case isNumeric(cell):
		return "numeric"
	case isDate(cell):
		return "date"
	case isBoolean(cell):
		return "boolean"
	default:
		return "text"
	}
}

// isNumeric accepts anything that parses as a float once thousands
// separators are stripped
func isNumeric(cell string) bool {
	_, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	return err == nil
}

func isDate(cell string) bool {
	for _, p := range datePatterns {
		if p.MatchString(cell) {
			return true
		}
	}
	return false
}

func isBoolean(cell string) bool {
	return booleanTokens[strings.ToLower(cell)]
}

/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detector.go
Description: Encoding detection and decoding for the Akaylee CSV Lint engine. Chooses a
decode strategy from BOM prefixes and null-byte parity patterns, falls back through a
fixed priority list of common encodings, and produces the immutable decoded document
every later check consumes. Total decode failure is the only fatal outcome here.
*/

package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/kleascm/akaylee-csvlint/pkg/report"
)

// ProbeLimit is how many leading bytes the byte-pattern detection examines
const ProbeLimit = 4096

// Null-parity classification constants. ASCII text stored as UTF-16 puts a
// null byte on one parity of offsets; these ratios decide when that signal
// is strong enough to trust. Load-bearing values, do not tune.
const (
	nullSampleLimit   = 1000
	highNullThreshold = 0.4
	lowNullThreshold  = 0.1
)

// ErrUndecodable is returned when no encoding in the fallback chain can
// decode the input. Callers treat this as a fatal file-level failure.
var ErrUndecodable = errors.New("could not decode file with any common encoding")

// fallbackEncodings is the fixed decode priority when no byte signal fires.
// The Latin-family single-byte decodes always succeed, so the chain terminates.
var fallbackEncodings = []string{"utf-8", "utf-8-sig", "latin-1", "cp1252", "iso-8859-1"}

// Document is the decoded form of the raw input, immutable once produced
type Document struct {
	Encoding string   // Label of the encoding that decoded successfully
	Text     string   // Full decoded text
	Lines    []string // Physical lines, terminators retained for line-ending analysis
}

// DetectFromBytes inspects the leading bytes for a BOM or a UTF-16 null-byte
// parity pattern. Returns the detected encoding label, or "" when no byte
// signal fires and the caller should fall back to the priority list.
func DetectFromBytes(head []byte) string {
	if len(head) > ProbeLimit {
		head = head[:ProbeLimit]
	}

	// BOM prefixes, longest first so UTF-32-LE is not mistaken for UTF-16-LE
	switch {
	case bytes.HasPrefix(head, []byte{0xff, 0xfe, 0x00, 0x00}):
		return "utf-32-le"
	case bytes.HasPrefix(head, []byte{0x00, 0x00, 0xfe, 0xff}):
		return "utf-32-be"
	case bytes.HasPrefix(head, []byte{0xff, 0xfe}):
		return "utf-16-le"
	case bytes.HasPrefix(head, []byte{0xfe, 0xff}):
		return "utf-16-be"
	case bytes.HasPrefix(head, []byte{0xef, 0xbb, 0xbf}):
		return "utf-8-sig"
	}

	if len(head) < 4 {
		return ""
	}

	sample := head
	if len(sample) > nullSampleLimit {
		sample = sample[:nullSampleLimit]
	}
	evenNulls, oddNulls := 0, 0
	for i, b := range sample {
		if b != 0x00 {
			continue
		}
		if i%2 == 0 {
			evenNulls++
		} else {
			oddNulls++
		}
	}
	sampleSize := len(sample) / 2
	if sampleSize == 0 {
		return ""
	}

	evenRatio := float64(evenNulls) / float64(sampleSize)
	oddRatio := float64(oddNulls) / float64(sampleSize)

	// UTF-16-LE stores ASCII as char+0x00, so nulls land on odd offsets
	if oddRatio > highNullThreshold && evenRatio < lowNullThreshold {
		return "utf-16-le"
	}
	// UTF-16-BE stores ASCII as 0x00+char, so nulls land on even offsets
	if evenRatio > highNullThreshold && oddRatio < lowNullThreshold {
		return "utf-16-be"
	}

	return ""
}

// Decode chooses an encoding for data and returns the decoded document along
// with any encoding findings. A byte-signal detection is attempted first,
// then the fixed fallback chain; the first successful decode wins. Any
// encoding outside the UTF-8 family yields a warning. ErrUndecodable is
// returned only when every candidate fails.
func Decode(data []byte) (*Document, []report.Finding, error) {
	var candidates []string
	if detected := DetectFromBytes(data); detected != "" {
		candidates = append(candidates, detected)
	}
	candidates = append(candidates, fallbackEncodings...)

	for _, name := range candidates {
		text, ok := decodeAs(name, data)
		if !ok {
			continue
		}

		var findings []report.Finding
		if name != "utf-8" && name != "utf-8-sig" {
			var w report.Finding
			if strings.HasPrefix(name, "utf-16") {
				w = report.NewWarning(report.CategoryEncoding,
					fmt.Sprintf("File is %s encoded", strings.ToUpper(name)))
			} else {
				w = report.NewWarning(report.CategoryEncoding,
					fmt.Sprintf("File not in UTF-8 encoding, detected: %s", name))
			}
			w.Suggestion = "Consider converting to UTF-8 for better compatibility"
			findings = append(findings, w)
		}

		doc := &Document{
			Encoding: name,
			Text:     text,
			Lines:    splitKeepEnds(text),
		}
		return doc, findings, nil
	}

	return nil, nil, ErrUndecodable
}

// decodeAs decodes data with the named encoding, reporting success.
// The single-byte Latin-family decoders cannot fail.
func decodeAs(name string, data []byte) (string, bool) {
	switch name {
	case "utf-8":
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	case "utf-8-sig":
		trimmed := bytes.TrimPrefix(data, []byte{0xef, 0xbb, 0xbf})
		if !utf8.Valid(trimmed) {
			return "", false
		}
		return string(trimmed), true
	case "utf-16-le":
		return transformBytes(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), data)
	case "utf-16-be":
		return transformBytes(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), data)
	case "utf-32-le":
		return transformBytes(utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder(), data)
	case "utf-32-be":
		return transformBytes(utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder(), data)
	case "latin-1", "iso-8859-1":
		return transformBytes(charmap.ISO8859_1.NewDecoder(), data)
	case "cp1252":
		return transformBytes(charmap.Windows1252.NewDecoder(), data)
	}
	return "", false
}

type byteDecoder interface {
	Bytes(b []byte) ([]byte, error)
}

func transformBytes(dec byteDecoder, data []byte) (string, bool) {
	out, err := dec.Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// splitKeepEnds splits text into physical lines, retaining terminators.
// Boundaries are LF, CRLF and lone CR; exotic Unicode separators stay inside
// their line on purpose so the special-character scan can flag them.
func splitKeepEnds(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

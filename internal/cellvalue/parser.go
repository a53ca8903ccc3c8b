// Package cellvalue extracts numeric values and display-precision hints from
// raw calibration-table cell text. Every function is pure: malformed text is
// an absent value, never an error, because calibration tables routinely mix
// labels, blanks and numbers.
package cellvalue

import (
	"strconv"
	"strings"
)

// CellValue is the parsed view of one cell. Raw text stays the source of
// truth; a CellValue is re-derived on every read and never written back.
type CellValue struct {
	// Value is the parsed number. Meaningful only when Valid is true.
	Value float64
	// Valid reports whether the cell text contained a parseable number.
	Valid bool
	// DecimalPlaces is the count of characters after the first '.' in the
	// visible (markup-stripped) text. It is tracked even for cells that do
	// not parse, and is used only for output formatting.
	DecimalPlaces int
}

// Parse extracts a numeric value and a decimal-places hint from raw cell
// text. Markup tags are treated as zero-width, surrounding whitespace is
// ignored, and parsing is a permissive prefix parse: an optional sign,
// digits, and at most one decimal point, stopping at the first character
// that does not fit. "12.5 rpm" parses as 12.5; "n/a" does not parse.
func Parse(raw string) CellValue {
	text := strings.TrimSpace(StripMarkup(raw))

	cv := CellValue{DecimalPlaces: decimalPlaces(text)}

	prefix := numericPrefix(text)
	if prefix == "" {
		return cv
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return cv
	}
	cv.Value = v
	cv.Valid = true
	return cv
}

// IsBlank reports whether the cell is empty once markup is stripped and
// whitespace trimmed. The "&nbsp;" entity counts as blank; a literal
// non-breaking space needs no case of its own, TrimSpace already trims it as
// Unicode white space. Blank is distinct from non-numeric: a text label is
// non-numeric but not blank.
func IsBlank(raw string) bool {
	text := strings.TrimSpace(StripMarkup(raw))
	return text == "" || text == "&nbsp;"
}

// Format renders a numeric result back to cell text with a fixed number of
// decimal places.
func Format(v float64, places int) string {
	if places < 0 {
		places = 0
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}

// StripMarkup removes <...> tag spans from cell text. Unterminated tags run
// to the end of the string.
func StripMarkup(raw string) string {
	if !strings.ContainsRune(raw, '<') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	depth := 0
	for _, r := range raw {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decimalPlaces counts the characters after the first '.' in the stripped
// text, independent of whether the text parses as a number.
func decimalPlaces(text string) int {
	i := strings.IndexByte(text, '.')
	if i < 0 {
		return 0
	}
	return len(text) - i - 1
}

// numericPrefix returns the longest leading substring of text that forms a
// decimal number: optional sign, digits, at most one '.'. Empty when the
// text has no leading digits to parse.
func numericPrefix(text string) string {
	end := 0
	sawDigit := false
	sawDot := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '+' || c == '-':
			if i != 0 {
				goto done
			}
		case c == '.':
			if sawDot {
				goto done
			}
			sawDot = true
		case c >= '0' && c <= '9':
			sawDigit = true
		default:
			goto done
		}
		end = i + 1
	}
done:
	if !sawDigit {
		return ""
	}
	return text[:end]
}

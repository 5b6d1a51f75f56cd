package ledger

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParseNumber converts an arbitrary spreadsheet cell into a Number.
// Currency symbols, thousand separators and whitespace are stripped; a value
// wrapped in parentheses is negative. A cell with nothing numeric left after
// stripping is missing, never zero.
func ParseNumber(cell string) Number {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Number{}
	}

	neg := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" {
		return Number{}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}
	}
	if neg {
		v = -v
	}
	return N(v)
}

// dateLayouts covers the formats excelize hands back for date cells plus the
// spellings seen in exported ledgers.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006.01.02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1/2/06 15:04",
	"02.01.2006",
	time.RFC3339,
}

// excelEpoch is day zero of the 1900 date system (accounting for the
// fictitious 1900-02-29 that the format inherits from Lotus 1-2-3).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate converts a spreadsheet cell into a date. Textual layouts are
// tried first, then a bare number is treated as an Excel serial day.
// Failure returns ok=false; rows with unparseable dates are excluded from
// date-based groupings only.
func ParseDate(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 300000 {
		days := int(serial)
		frac := serial - float64(days)
		t := excelEpoch.AddDate(0, 0, days)
		return t.Add(time.Duration(frac * 24 * float64(time.Hour))), true
	}

	return time.Time{}, false
}

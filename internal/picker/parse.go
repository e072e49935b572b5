package picker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	compositeLayout = "2006-01-02T15:04:05"
	boundTextLayout = "2006-01-02 15:04"

	expectedDateShapes = "yyyy-MM-dd, yyyy-MM-ddTHH:mm:ss"
	expectedTimeShapes = "HH:mm, HH:mm:ss"
)

// Calendar-aware date prefix: 31-day months, 30-day months, then February up to the 29th.
const datePattern = `\d{4}-(?:(?:0[13578]|1[02])-(?:0[1-9]|[12]\d|3[01])|(?:0[469]|11)-(?:0[1-9]|[12]\d|30)|02-(?:0[1-9]|[12]\d))`

var (
	// The date-time shapes are only anchored at the start, so a trailing fraction
	// ("2023-06-15T13:30:00.00") is still accepted.
	reDateTimeSeconds = regexp.MustCompile(`^` + datePattern + `T(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d`)
	reDateTimeMinutes = regexp.MustCompile(`^` + datePattern + `T(?:[01]\d|2[0-3]):[0-5]\d`)
	reDateOnly        = regexp.MustCompile(`^` + datePattern + `$`)

	reTimeMinutes = regexp.MustCompile(`^(?:[0-1]?\d|2[0-3]):[0-5]\d$`)
	reTimeSeconds = regexp.MustCompile(`^(?:[0-1]?\d|2[0-3]):[0-5]\d:[0-5]\d$`)
)

// Layouts tried, in order, when a date or value has to be parsed best-effort.
var looseLayouts = []string{
	compositeLayout,
	"2006-01-02T15:04",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	dateLayout,
}

// ParseError is the non-fatal diagnostic for a malformed bound or value.
type ParseError struct {
	Field    string
	Input    string
	Expected string
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Input)
	}
	return fmt.Sprintf("invalid %s format %q, use %s", e.Field, e.Input, e.Expected)
}

// CheckDateBound reports whether s has one of the accepted date bound shapes:
// yyyy-MM-ddTHH:mm:ss, yyyy-MM-ddTHH:mm or yyyy-MM-dd.
func CheckDateBound(s string) bool {
	return reDateTimeSeconds.MatchString(s) ||
		reDateTimeMinutes.MatchString(s) ||
		reDateOnly.MatchString(s)
}

// CheckTimeBound reports whether s is HH:mm or HH:mm:ss.
func CheckTimeBound(s string) bool {
	return reTimeMinutes.MatchString(s) || reTimeSeconds.MatchString(s)
}

// ParseMinDate parses a lower date bound. A bound without a time of day starts
// at 00:00:00 of that day.
//
// The returned error is a diagnostic only: when ok is true the bound was
// recovered (possibly best-effort) and should be used. When ok is false the
// bound could not be salvaged and must be treated as absent.
func ParseMinDate(s string, loc *time.Location) (t time.Time, ok bool, diag error) {
	return parseDateBound("minDate", s, loc, 0, 0, 0)
}

// ParseMaxDate parses an upper date bound. A bound without a time of day ends
// at 23:30:59 of that day; callers that need the exact end of the day must
// pass an explicit time.
func ParseMaxDate(s string, loc *time.Location) (t time.Time, ok bool, diag error) {
	return parseDateBound("maxDate", s, loc, 23, 30, 59)
}

func parseDateBound(field, s string, loc *time.Location, h, m, sec int) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	var diag error
	if !CheckDateBound(s) {
		diag = &ParseError{Field: field, Input: s, Expected: expectedDateShapes}
	}
	t, ok := parseLoose(s, loc)
	if !ok {
		if diag == nil {
			// Shape matched but the day does not exist (2023-02-29).
			diag = &ParseError{Field: field, Input: s}
		}
		return time.Time{}, false, diag
	}
	if !strings.Contains(s, "T") {
		y, mo, d := t.Date()
		t = time.Date(y, mo, d, h, m, sec, 0, loc)
	}
	return t, true, diag
}

// ParseTimeBound parses HH:mm or HH:mm:ss. As with the date bounds, diag may be
// non-nil while ok is true.
func ParseTimeBound(field, s string) (c Clock, ok bool, diag error) {
	s = strings.TrimSpace(s)
	if !CheckTimeBound(s) {
		diag = &ParseError{Field: field, Input: s, Expected: expectedTimeShapes}
	}
	h, m, ok := splitClock(s)
	if !ok {
		return Clock{}, false, diag
	}
	return Clock{Hour: wrapBoundHour(h), Minute: wrapBoundMinute(m)}, true, diag
}

// ParseValue parses a raw value pushed by the host: decimal epoch
// milliseconds or any of the accepted date shapes (RFC 3339 included).
func ParseValue(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return checkYear(raw, time.UnixMilli(ms).In(loc))
	}
	if t, ok := parseLoose(raw, loc); ok {
		return checkYear(raw, t)
	}
	return time.Time{}, &ParseError{Field: "value", Input: raw, Expected: "epoch milliseconds or " + expectedDateShapes}
}

// checkYear rejects values whose year cannot be written as yyyy.
func checkYear(raw string, t time.Time) (time.Time, error) {
	if y := t.Year(); y < 0 || y > 9999 {
		return time.Time{}, &ParseError{Field: "value", Input: raw, Expected: "a year between 0000 and 9999"}
	}
	return t, nil
}

// SplitValue splits "date T time" at the first T.
func SplitValue(s string) (date, clock string) {
	date, clock, _ = strings.Cut(s, "T")
	return date, clock
}

func parseLoose(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range looseLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// splitClock reads the first two ':' separated tokens as integers.
func splitClock(s string) (h, m int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, okH := leadingInt(parts[0])
	m, okM := leadingInt(parts[1])
	if !okH || !okM {
		return 0, 0, false
	}
	return h, m, true
}

// leadingInt parses an optional sign followed by digits, ignoring anything after.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func wrapBoundHour(v int) int {
	if v < 0 {
		return 23
	}
	return v % 24
}

func wrapBoundMinute(v int) int {
	if v < 0 {
		return 59
	}
	return v % 60
}

package picker

import (
	"strconv"
	"time"

	"datepick/internal/model"
)

// Clock is an hour/minute pair.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String returns the zero-padded HH:mm form.
func (c Clock) String() string {
	return twoChar(c.Hour) + ":" + twoChar(c.Minute)
}

// DatePart is a calendar date without a time of day.
type DatePart struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) DatePart {
	y, m, d := t.Date()
	return DatePart{Year: y, Month: m, Day: d}
}

// String returns yyyy-MM-dd.
func (d DatePart) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

func (d DatePart) IsZero() bool { return d == DatePart{} }

// Parts is the editable working state: one date and one time of day.
//
// The hour and minute are only written through SetHour and SetMinute, which
// keep them inside [0,23] and [0,59].
type Parts struct {
	Date   DatePart
	hour   int
	minute int
}

func (p Parts) Hour() int   { return p.hour }
func (p Parts) Minute() int { return p.minute }

func (p Parts) Clock() Clock { return Clock{Hour: p.hour, Minute: p.minute} }

// HourText and MinuteText are the two-character display forms.
func (p Parts) HourText() string   { return twoChar(p.hour) }
func (p Parts) MinuteText() string { return twoChar(p.minute) }

// SetHour stores v modulo 24. Any negative v becomes 23.
func (p *Parts) SetHour(v int) {
	if v < 0 {
		p.hour = 23
		return
	}
	p.hour = v % 24
}

// SetMinute stores v modulo 60. Values above 59 carry one hour forward and
// negative values become 59 while borrowing one hour.
func (p *Parts) SetMinute(v int) {
	if v > 59 {
		p.SetHour(p.hour + 1)
	}
	if v < 0 {
		p.minute = 59
		p.SetHour(p.hour - 1)
		return
	}
	p.minute = v % 60
}

func (p *Parts) IncrementHour()   { p.SetHour(p.hour + 1) }
func (p *Parts) DecrementHour()   { p.SetHour(p.hour - 1) }
func (p *Parts) IncrementMinute() { p.SetMinute(p.minute + 1) }
func (p *Parts) DecrementMinute() { p.SetMinute(p.minute - 1) }

// Clamp pulls the time of day into [MinTime, MaxTime]. It only acts in time
// mode; in date and both mode out-of-range values are left for Validate to
// report.
//
// The four checks run one after another against the current state, so when
// the bounds are inverted the last matching check decides the result.
func (p *Parts) Clamp(mode model.Mode, b Bounds) {
	if mode != model.ModeTime {
		return
	}
	if lo := b.MinTime; lo != nil {
		if p.hour < lo.Hour {
			p.hour, p.minute = lo.Hour, lo.Minute
		}
		if p.hour == lo.Hour && p.minute < lo.Minute {
			p.minute = lo.Minute
		}
	}
	if hi := b.MaxTime; hi != nil {
		if p.hour == hi.Hour && p.minute > hi.Minute {
			p.minute = hi.Minute
		}
		if p.hour > hi.Hour {
			p.hour, p.minute = hi.Hour, hi.Minute
		}
	}
}

func twoChar(n int) string {
	s := strconv.Itoa(n)
	if len(s) == 2 {
		return s
	}
	return "0" + s
}

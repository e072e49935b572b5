package picker

import "time"

// Bounds are the parsed constraints. A nil field is unbounded.
type Bounds struct {
	MinDate *time.Time
	MaxDate *time.Time
	MinTime *Clock
	MaxTime *Clock
}

// BoundsView is the printable form of Bounds.
type BoundsView struct {
	MinDate string `json:"minDate,omitempty"`
	MaxDate string `json:"maxDate,omitempty"`
	MinTime string `json:"minTime,omitempty"`
	MaxTime string `json:"maxTime,omitempty"`
}

func (b Bounds) View() BoundsView {
	var v BoundsView
	if b.MinDate != nil {
		v.MinDate = b.MinDate.Format(compositeLayout)
	}
	if b.MaxDate != nil {
		v.MaxDate = b.MaxDate.Format(compositeLayout)
	}
	if b.MinTime != nil {
		v.MinTime = b.MinTime.String()
	}
	if b.MaxTime != nil {
		v.MaxTime = b.MaxTime.String()
	}
	return v
}

func formatBound(t time.Time) string { return t.Format(boundTextLayout) }

package picker

import (
	"encoding/json"
	"fmt"
)

type Verdict int

const (
	// VerdictSkipped is returned in time mode, where bounds are enforced by clamping.
	VerdictSkipped Verdict = iota
	VerdictValid
	VerdictInvalid
)

func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictInvalid:
		return "invalid"
	default:
		return "skipped"
	}
}

func (v Verdict) MarshalJSON() ([]byte, error) { return json.Marshal(v.String()) }

type Reason string

const (
	ReasonBelowMinimum Reason = "below-minimum"
	ReasonAboveMaximum Reason = "above-maximum"
)

type ValidationResult struct {
	Verdict Verdict `json:"verdict"`
	Reason  Reason  `json:"reason,omitempty"`
	// Bound is the violated bound as yyyy-MM-dd HH:mm.
	Bound string `json:"bound,omitempty"`
}

func (r ValidationResult) Valid() bool { return r.Verdict != VerdictInvalid }

// Message is the human-readable text a host can show next to the control.
func (r ValidationResult) Message() string {
	switch {
	case r.Verdict != VerdictInvalid:
		return ""
	case r.Reason == ReasonAboveMaximum:
		return "Max Date is " + r.Bound
	default:
		return "Min Date is " + r.Bound
	}
}

// Err returns a *BoundError for an invalid result and nil otherwise.
func (r ValidationResult) Err() error {
	if r.Verdict != VerdictInvalid {
		return nil
	}
	return &BoundError{Reason: r.Reason, Bound: r.Bound}
}

type BoundError struct {
	Reason Reason
	Bound  string
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("value %s (bound %s)", e.Reason, e.Bound)
}

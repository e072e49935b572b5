package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects which parts of the picker are editable, validated and emitted.
type Mode string

const (
	ModeDate Mode = "date"
	ModeTime Mode = "time"
	ModeBoth Mode = "both"
)

// ParseMode accepts "date", "time" or "both". An empty string means both.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeBoth:
		return ModeBoth, nil
	case ModeDate:
		return ModeDate, nil
	case ModeTime:
		return ModeTime, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected date, time or both)", s)
	}
}

// Constraints are the raw declarative inputs a host hands to the picker.
// Empty strings mean "no bound".
type Constraints struct {
	Mode    Mode   `json:"mode" mapstructure:"mode"`
	MinDate string `json:"minDate,omitempty" mapstructure:"min_date"` // yyyy-MM-dd[THH:mm[:ss]]
	MaxDate string `json:"maxDate,omitempty" mapstructure:"max_date"`
	MinTime string `json:"minTime,omitempty" mapstructure:"min_time"` // HH:mm[:ss]
	MaxTime string `json:"maxTime,omitempty" mapstructure:"max_time"`
}

// Emission is one recorded value change, as persisted in the history log.
type Emission struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"sessionId"`
	Mode       Mode      `json:"mode"`
	Value      string    `json:"value"`
	Millis     int64     `json:"millis"`
	Valid      bool      `json:"valid"`
	Reason     string    `json:"reason,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

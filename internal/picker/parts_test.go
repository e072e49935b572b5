package picker

import (
	"testing"

	"datepick/internal/model"
)

func partsAt(h, m int) Parts {
	var p Parts
	p.SetHour(h)
	p.SetMinute(m)
	return p
}

func TestParts_HourRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		p := partsAt(h, 15)
		p.IncrementHour()
		p.DecrementHour()
		if p.Hour() != h || p.Minute() != 15 {
			t.Fatalf("hour %d: round trip gave %02d:%02d", h, p.Hour(), p.Minute())
		}
		p.DecrementHour()
		p.IncrementHour()
		if p.Hour() != h {
			t.Fatalf("hour %d: reverse round trip gave %d", h, p.Hour())
		}
	}
}

func TestParts_HourWraps(t *testing.T) {
	p := partsAt(23, 0)
	p.IncrementHour()
	if p.Hour() != 0 {
		t.Fatalf("expected 23+1 to wrap to 0, got %d", p.Hour())
	}
	p.DecrementHour()
	if p.Hour() != 23 {
		t.Fatalf("expected 0-1 to wrap to 23, got %d", p.Hour())
	}
}

func TestParts_MinuteCarry(t *testing.T) {
	p := partsAt(10, 59)
	p.IncrementMinute()
	if p.Hour() != 11 || p.Minute() != 0 {
		t.Fatalf("expected 11:00, got %02d:%02d", p.Hour(), p.Minute())
	}
	p.DecrementMinute()
	if p.Hour() != 10 || p.Minute() != 59 {
		t.Fatalf("expected 10:59, got %02d:%02d", p.Hour(), p.Minute())
	}

	p = partsAt(23, 59)
	p.IncrementMinute()
	if p.Hour() != 0 || p.Minute() != 0 {
		t.Fatalf("expected 23:59+1 to give 00:00, got %02d:%02d", p.Hour(), p.Minute())
	}
	p.DecrementMinute()
	if p.Hour() != 23 || p.Minute() != 59 {
		t.Fatalf("expected 00:00-1 to give 23:59, got %02d:%02d", p.Hour(), p.Minute())
	}
}

func TestParts_FullMinuteCycleCarriesOneHour(t *testing.T) {
	p := partsAt(7, 0)
	for i := 0; i < 59; i++ {
		p.IncrementMinute()
	}
	if p.Hour() != 7 || p.Minute() != 59 {
		t.Fatalf("after 59 steps expected 07:59, got %02d:%02d", p.Hour(), p.Minute())
	}
	p.IncrementMinute()
	if p.Hour() != 8 || p.Minute() != 0 {
		t.Fatalf("after 60 steps expected 08:00, got %02d:%02d", p.Hour(), p.Minute())
	}
}

func TestParts_SetterPostconditions(t *testing.T) {
	var p Parts
	p.SetHour(-5)
	if p.Hour() != 23 {
		t.Fatalf("negative hour should become 23, got %d", p.Hour())
	}
	p.SetHour(49)
	if p.Hour() != 1 {
		t.Fatalf("49 should wrap to 1, got %d", p.Hour())
	}
	p.SetMinute(75)
	if p.Hour() != 2 || p.Minute() != 15 {
		t.Fatalf("minute 75 should carry: got %02d:%02d", p.Hour(), p.Minute())
	}
	if p.HourText() != "02" || p.MinuteText() != "15" || p.Clock().String() != "02:15" {
		t.Fatalf("unexpected padding: %s %s %s", p.HourText(), p.MinuteText(), p.Clock())
	}
}

func TestParts_ClampTimeMode(t *testing.T) {
	b := Bounds{MinTime: &Clock{13, 30}, MaxTime: &Clock{15, 0}}
	cases := []struct {
		in, want Clock
	}{
		{Clock{12, 0}, Clock{13, 30}},
		{Clock{12, 45}, Clock{13, 30}},
		{Clock{13, 10}, Clock{13, 30}},
		{Clock{13, 45}, Clock{13, 45}},
		{Clock{14, 0}, Clock{14, 0}},
		{Clock{15, 20}, Clock{15, 0}},
		{Clock{16, 0}, Clock{15, 0}},
		{Clock{16, 45}, Clock{15, 0}},
	}
	for _, tc := range cases {
		p := partsAt(tc.in.Hour, tc.in.Minute)
		p.Clamp(model.ModeTime, b)
		if p.Clock() != tc.want {
			t.Fatalf("clamp(%s): expected %s, got %s", tc.in, tc.want, p.Clock())
		}
	}
}

func TestParts_ClampOnlyOneSide(t *testing.T) {
	p := partsAt(5, 0)
	p.Clamp(model.ModeTime, Bounds{MaxTime: &Clock{4, 0}})
	if p.Clock() != (Clock{4, 0}) {
		t.Fatalf("expected 04:00, got %s", p.Clock())
	}
	p = partsAt(0, 0)
	p.Clamp(model.ModeTime, Bounds{MinTime: &Clock{0, 15}})
	if p.Clock() != (Clock{0, 15}) {
		t.Fatalf("midnight min bound should still apply, got %s", p.Clock())
	}
}

func TestParts_ClampInvertedBoundsLastStepWins(t *testing.T) {
	b := Bounds{MinTime: &Clock{16, 0}, MaxTime: &Clock{10, 0}}
	p := partsAt(12, 0)
	p.Clamp(model.ModeTime, b)
	if p.Clock() != (Clock{10, 0}) {
		t.Fatalf("expected the max step to win, got %s", p.Clock())
	}
}

func TestParts_ClampIsNoOpOutsideTimeMode(t *testing.T) {
	b := Bounds{MinTime: &Clock{13, 30}, MaxTime: &Clock{15, 0}}
	for _, mode := range []model.Mode{model.ModeBoth, model.ModeDate} {
		p := partsAt(9, 0)
		p.Clamp(mode, b)
		if p.Clock() != (Clock{9, 0}) {
			t.Fatalf("mode %s: expected no clamp, got %s", mode, p.Clock())
		}
	}
}

// Package picker is the value model behind a combined date/time input.
//
// A Synchronizer holds one canonical epoch-millisecond value and splits it into
// a date part and a time part that can be edited independently. Every edit is
// recomposed into the canonical value and sent to the host through Hooks.
//
// Bounds are applied differently per mode. In time mode the time part is
// clamped into [MinTime, MaxTime] silently and Validate reports nothing. In
// date and both mode nothing is corrected; Validate compares the composed
// value against MinDate and MaxDate and reports the violation. Hosts that
// need auto-correction of combined date+time values must do it themselves.
//
// A MaxDate given without a time of day means 23:30:59 on that day, not the
// end of the day.
package picker

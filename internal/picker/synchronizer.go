package picker

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"datepick/internal/model"

	"go.uber.org/zap"
)

type State int

const (
	Uninitialized State = iota
	Loaded
	Edited
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Edited:
		return "edited"
	default:
		return "uninitialized"
	}
}

// Emitted is the value handed to the host: epoch milliseconds in date and
// both mode, an HH:mm:ss string in time mode.
type Emitted struct {
	Mode   model.Mode
	Millis int64
	Clock  string
}

func (e Emitted) IsTime() bool { return e.Mode == model.ModeTime }

func (e Emitted) String() string {
	if e.IsTime() {
		return e.Clock
	}
	return strconv.FormatInt(e.Millis, 10)
}

func (e Emitted) MarshalJSON() ([]byte, error) {
	if e.IsTime() {
		return json.Marshal(e.Clock)
	}
	return json.Marshal(e.Millis)
}

// Hooks are the outbound notifications. Any of them may be nil.
//
// Calling back into the Synchronizer from inside a hook is not supported.
type Hooks struct {
	OnChange     func(Emitted)
	OnTouched    func(Emitted)
	OnValidate   func(ValidationResult)
	OnParseError func(error)
}

type Option func(*Synchronizer)

func WithLogger(l *zap.Logger) Option {
	return func(s *Synchronizer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLocation sets the wall-clock location parts are read and composed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Synchronizer) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithHooks(h Hooks) Option {
	return func(s *Synchronizer) { s.hooks = h }
}

// WithNow replaces time.Now, used when Load receives no value.
func WithNow(now func() time.Time) Option {
	return func(s *Synchronizer) {
		if now != nil {
			s.now = now
		}
	}
}

// Synchronizer owns the single external value of a date/time control and
// keeps it in step with the separately editable date and time parts.
//
// After Load one recomposition is held back until Settle runs. Every edit
// method settles first, so the deferred step always happens before the next
// edit is applied. A Synchronizer is not safe for concurrent use.
type Synchronizer struct {
	loc   *time.Location
	now   func() time.Time
	log   *zap.Logger
	hooks Hooks

	constraints model.Constraints
	bounds      Bounds

	parts       Parts
	value       int64
	emitted     *Emitted
	offsetHours float64

	state    State
	disabled bool
	valid    bool
	pending  func()
}

func New(opts ...Option) *Synchronizer {
	s := &Synchronizer{
		loc:         time.Local,
		now:         time.Now,
		log:         zap.NewNop(),
		constraints: model.Constraints{Mode: model.ModeBoth},
		valid:       true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetHooks replaces the outbound notifications.
func (s *Synchronizer) SetHooks(h Hooks) { s.hooks = h }

// SetBounds applies new constraints. Only fields that differ from the
// previous call are parsed again; an empty field removes that bound.
// Malformed bounds are reported through OnParseError and parsed best-effort.
func (s *Synchronizer) SetBounds(c model.Constraints) {
	mode, err := model.ParseMode(string(c.Mode))
	if err != nil {
		s.log.Warn("unknown picker mode, using both", zap.String("mode", string(c.Mode)))
		mode = model.ModeBoth
	}
	c.Mode = mode
	prev := s.constraints

	if c.MinDate != prev.MinDate {
		s.bounds.MinDate = s.dateBound("minDate", c.MinDate, ParseMinDate)
	}
	if c.MaxDate != prev.MaxDate {
		s.bounds.MaxDate = s.dateBound("maxDate", c.MaxDate, ParseMaxDate)
	}
	if c.MinTime != prev.MinTime {
		s.bounds.MinTime = s.timeBound("minTime", c.MinTime)
	}
	if c.MaxTime != prev.MaxTime {
		s.bounds.MaxTime = s.timeBound("maxTime", c.MaxTime)
	}
	s.constraints = c
	if mode == model.ModeTime {
		s.valid = true
	}
}

func (s *Synchronizer) dateBound(field, raw string, parse func(string, *time.Location) (time.Time, bool, error)) *time.Time {
	if raw == "" {
		return nil
	}
	t, ok, diag := parse(raw, s.loc)
	if diag != nil {
		s.reportParseError(diag)
	}
	if !ok {
		s.log.Warn("bound ignored", zap.String("field", field), zap.String("input", raw))
		return nil
	}
	return &t
}

func (s *Synchronizer) timeBound(field, raw string) *Clock {
	if raw == "" {
		return nil
	}
	c, ok, diag := ParseTimeBound(field, raw)
	if diag != nil {
		s.reportParseError(diag)
	}
	if !ok {
		s.log.Warn("bound ignored", zap.String("field", field), zap.String("input", raw))
		return nil
	}
	return &c
}

func (s *Synchronizer) reportParseError(err error) {
	if pe, ok := err.(*ParseError); ok {
		s.log.Warn("invalid bound format",
			zap.String("field", pe.Field),
			zap.String("input", pe.Input),
			zap.String("expected", pe.Expected))
	} else {
		s.log.Warn("invalid input", zap.Error(err))
	}
	if s.hooks.OnParseError != nil {
		s.hooks.OnParseError(err)
	}
}

// Load replaces the current value. An empty raw value means now. A value that
// cannot be parsed is reported and leaves the state untouched.
//
// The recomposition that follows a load is deferred until Settle.
func (s *Synchronizer) Load(raw string) error {
	if raw == "" {
		s.LoadTime(s.now())
		return nil
	}
	t, err := ParseValue(raw, s.loc)
	if err != nil {
		s.reportParseError(err)
		return err
	}
	s.LoadTime(t)
	return nil
}

// LoadTime is Load for a value the host already holds as a time.Time.
func (s *Synchronizer) LoadTime(t time.Time) {
	local := t.In(s.loc)
	_, offset := local.Zone()
	s.offsetHours = math.Abs(float64(offset)) / 3600

	s.value = t.UnixMilli()
	s.emitted = nil
	s.parts.Date = DateOf(local)
	s.parts.SetHour(local.Hour())
	s.parts.SetMinute(local.Minute())

	s.pending = s.recompose
	s.state = Loaded
}

// Pending reports whether the post-load recomposition has yet to run.
func (s *Synchronizer) Pending() bool { return s.pending != nil }

// Settle runs the deferred post-load recomposition, if any. It reports
// whether anything ran.
func (s *Synchronizer) Settle() bool {
	task := s.pending
	if task == nil {
		return false
	}
	s.pending = nil
	task()
	return true
}

// SetDisabled toggles whether edits are accepted.
func (s *Synchronizer) SetDisabled(disabled bool) { s.disabled = disabled }

func (s *Synchronizer) Disabled() bool { return s.disabled }

func (s *Synchronizer) acceptEdit() bool {
	s.Settle()
	return s.state != Uninitialized && !s.disabled
}

// EditTime applies an HH:mm edit. Text of any other length is ignored.
func (s *Synchronizer) EditTime(text string) bool {
	if !s.acceptEdit() || len(text) != 5 {
		return false
	}
	h, m, ok := splitClock(text)
	if !ok {
		return false
	}
	s.parts.SetHour(h)
	s.parts.SetMinute(m)
	s.commit()
	return true
}

// EditDate replaces the date part with the calendar date of t, read in t's
// own location.
func (s *Synchronizer) EditDate(t time.Time) bool {
	if !s.acceptEdit() {
		return false
	}
	s.parts.Date = DateOf(t)
	s.commit()
	return true
}

// EditDateText is EditDate for text input. Unparseable text is ignored.
func (s *Synchronizer) EditDateText(text string) bool {
	t, ok := parseLoose(text, s.loc)
	if !ok {
		s.Settle()
		return false
	}
	return s.EditDate(t)
}

func (s *Synchronizer) IncrementHour() bool   { return s.step((*Parts).IncrementHour) }
func (s *Synchronizer) DecrementHour() bool   { return s.step((*Parts).DecrementHour) }
func (s *Synchronizer) IncrementMinute() bool { return s.step((*Parts).IncrementMinute) }
func (s *Synchronizer) DecrementMinute() bool { return s.step((*Parts).DecrementMinute) }

func (s *Synchronizer) step(fn func(*Parts)) bool {
	if !s.acceptEdit() {
		return false
	}
	fn(&s.parts)
	s.commit()
	return true
}

// commit clamps the time part and recomposes after an edit.
func (s *Synchronizer) commit() {
	s.parts.Clamp(s.constraints.Mode, s.bounds)
	s.state = Edited
	s.recompose()
}

// Composite is the yyyy-MM-ddTHH:mm:00 string the value is built from.
func (s *Synchronizer) Composite() string {
	return s.parts.Date.String() + "T" + s.parts.Clock().String() + ":00"
}

func (s *Synchronizer) recompose() {
	composite := s.Composite()
	t, err := time.ParseInLocation(compositeLayout, composite, s.loc)
	if err != nil {
		// Only reachable through LoadTime with a year outside 0000-9999.
		s.log.Error("recompose failed", zap.String("composite", composite), zap.Error(err))
		if s.hooks.OnParseError != nil {
			s.hooks.OnParseError(&ParseError{Field: "value", Input: composite, Expected: "a year between 0000 and 9999"})
		}
		return
	}
	s.value = t.UnixMilli()

	out := Emitted{Mode: s.constraints.Mode, Millis: s.value}
	if out.IsTime() {
		out.Clock = s.parts.Clock().String() + ":00"
	}
	s.emitted = &out

	var result ValidationResult
	if !out.IsTime() {
		result = s.Validate(s.value)
	}

	if s.hooks.OnChange != nil {
		s.hooks.OnChange(out)
	}
	if s.hooks.OnTouched != nil {
		s.hooks.OnTouched(out)
	}
	if !out.IsTime() && s.hooks.OnValidate != nil {
		s.hooks.OnValidate(result)
	}
}

// Check compares ms with the date bounds without touching IsValid. The
// maximum is checked first. In time mode it returns VerdictSkipped: there the
// time bounds are applied by clamping instead.
func (s *Synchronizer) Check(ms int64) ValidationResult {
	if s.constraints.Mode == model.ModeTime {
		return ValidationResult{Verdict: VerdictSkipped}
	}
	if hi := s.bounds.MaxDate; hi != nil && ms > hi.UnixMilli() {
		return ValidationResult{Verdict: VerdictInvalid, Reason: ReasonAboveMaximum, Bound: formatBound(*hi)}
	}
	if lo := s.bounds.MinDate; lo != nil && ms < lo.UnixMilli() {
		return ValidationResult{Verdict: VerdictInvalid, Reason: ReasonBelowMinimum, Bound: formatBound(*lo)}
	}
	return ValidationResult{Verdict: VerdictValid}
}

// Validate is Check that also records the outcome as IsValid. Skipped
// results leave IsValid unchanged.
func (s *Synchronizer) Validate(ms int64) ValidationResult {
	r := s.Check(ms)
	if r.Verdict != VerdictSkipped {
		s.valid = r.Valid()
	}
	return r
}

func (s *Synchronizer) Mode() model.Mode              { return s.constraints.Mode }
func (s *Synchronizer) Constraints() model.Constraints { return s.constraints }
func (s *Synchronizer) Bounds() Bounds                 { return s.bounds }
func (s *Synchronizer) State() State                   { return s.state }
func (s *Synchronizer) Parts() Parts                   { return s.parts }
func (s *Synchronizer) Location() *time.Location       { return s.loc }

// Value is the canonical epoch-millisecond value.
func (s *Synchronizer) Value() int64 { return s.value }

// Emitted returns the last value sent to the hooks.
func (s *Synchronizer) Emitted() (Emitted, bool) {
	if s.emitted == nil {
		return Emitted{}, false
	}
	return *s.emitted, true
}

// OffsetHours is the absolute UTC offset of the loaded value, in hours. It
// is display metadata and takes no part in the arithmetic.
func (s *Synchronizer) OffsetHours() float64 { return s.offsetHours }

// IsValid is the outcome of the most recent validation.
func (s *Synchronizer) IsValid() bool { return s.valid }

type Snapshot struct {
	Mode        model.Mode `json:"mode"`
	State       string     `json:"state"`
	Date        string     `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"`
	Composite   string     `json:"composite,omitempty"`
	Value       int64      `json:"value"`
	Emitted     *Emitted   `json:"emitted,omitempty"`
	OffsetHours float64    `json:"offsetHours"`
	Valid       bool       `json:"valid"`
	Disabled    bool       `json:"disabled"`
	Pending     bool       `json:"pending"`
	Bounds      BoundsView `json:"bounds"`
}

func (s *Synchronizer) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:        s.constraints.Mode,
		State:       s.state.String(),
		Value:       s.value,
		OffsetHours: s.offsetHours,
		Valid:       s.valid,
		Disabled:    s.disabled,
		Pending:     s.Pending(),
		Bounds:      s.bounds.View(),
	}
	if s.state != Uninitialized {
		snap.Date = s.parts.Date.String()
		snap.Time = s.parts.Clock().String()
		snap.Composite = s.Composite()
	}
	if s.emitted != nil {
		e := *s.emitted
		snap.Emitted = &e
	}
	return snap
}

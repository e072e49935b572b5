package tui

import (
	"strings"
	"testing"
	"time"

	"datepick/internal/model"
	"datepick/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var testLoc = time.FixedZone("UTC+3", 3*60*60)

func newTestPicker(t *testing.T, c model.Constraints, value string) pickerModel {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	s := picker.New(picker.WithLocation(testLoc))
	s.SetBounds(c)
	if err := s.Load(value); err != nil {
		t.Fatalf("load: %v", err)
	}
	m := newPickerModel(s, Options{DatePlaceholder: "yyyy-MM-dd", TimePlaceholder: "HH:mm"})
	mAny, _ := m.Update(settleMsg{})
	return mAny.(pickerModel)
}

func send(t *testing.T, m pickerModel, msgs ...tea.Msg) pickerModel {
	t.Helper()
	for _, msg := range msgs {
		mAny, _ := m.Update(msg)
		m = mAny.(pickerModel)
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func typed(s string) []tea.Msg {
	msgs := []tea.Msg{key(tea.KeyCtrlU)}
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestPicker_InitSettles(t *testing.T) {
	s := picker.New(picker.WithLocation(testLoc))
	if err := s.Load("2023-06-15T09:05:42"); err != nil {
		t.Fatalf("load: %v", err)
	}
	m := newPickerModel(s, Options{})
	if m.Init() == nil {
		t.Fatalf("expected init cmd")
	}
	if !s.Pending() {
		t.Fatalf("expected work to stay pending until the settle message")
	}
	m = send(t, m, settleMsg{})
	if s.Pending() {
		t.Fatalf("expected settle message to run the deferred work")
	}
	if _, ok := s.Emitted(); !ok {
		t.Fatalf("expected an emitted value after settle")
	}
	if m.dateInput.Value() != "2023-06-15" || m.timeInput.Value() != "09:05" {
		t.Fatalf("unexpected inputs: %q %q", m.dateInput.Value(), m.timeInput.Value())
	}
}

func TestPicker_FocusCyclesByMode(t *testing.T) {
	m := newTestPicker(t, model.Constraints{Mode: model.ModeBoth}, "2023-06-15T09:05")
	want := []pickerFocus{focusHour, focusMinute, focusDate}
	for _, f := range want {
		m = send(t, m, key(tea.KeyTab))
		if m.focus != f {
			t.Fatalf("expected focus %s, got %s", f.label(), m.focus.label())
		}
	}
	m = send(t, m, key(tea.KeyShiftTab))
	if m.focus != focusMinute {
		t.Fatalf("expected shift+tab to go back to minute, got %s", m.focus.label())
	}

	tm := newTestPicker(t, model.Constraints{Mode: model.ModeTime}, "2023-06-15T09:05")
	if tm.focus != focusHour {
		t.Fatalf("time mode should start on the hour, got %s", tm.focus.label())
	}
	dm := newTestPicker(t, model.Constraints{Mode: model.ModeDate}, "2023-06-15T09:05")
	dm = send(t, dm, key(tea.KeyTab))
	if dm.focus != focusDate {
		t.Fatalf("date mode has a single field, got %s", dm.focus.label())
	}
}

func TestPicker_StepHourAndMinute(t *testing.T) {
	m := newTestPicker(t, model.Constraints{}, "2023-06-15T23:59")
	m = send(t, m, key(tea.KeyTab), key(tea.KeyUp))
	if m.timeInput.Value() != "00:59" {
		t.Fatalf("expected hour to wrap to 00:59, got %q", m.timeInput.Value())
	}
	m = send(t, m, key(tea.KeyTab), key(tea.KeyUp))
	if m.timeInput.Value() != "01:00" {
		t.Fatalf("expected minute carry to 01:00, got %q", m.timeInput.Value())
	}
	m = send(t, m, key(tea.KeyDown))
	if m.timeInput.Value() != "00:59" {
		t.Fatalf("expected minute borrow back to 00:59, got %q", m.timeInput.Value())
	}
}

func TestPicker_StepDay(t *testing.T) {
	m := newTestPicker(t, model.Constraints{}, "2023-06-30T10:00")
	m = send(t, m, key(tea.KeyUp))
	if m.dateInput.Value() != "2023-07-01" {
		t.Fatalf("expected the next day, got %q", m.dateInput.Value())
	}
	e, _ := m.sync.Emitted()
	if want := time.Date(2023, 7, 1, 10, 0, 0, 0, testLoc).UnixMilli(); e.Millis != want {
		t.Fatalf("expected %d, got %d", want, e.Millis)
	}
}

func TestPicker_TypedEntries(t *testing.T) {
	m := newTestPicker(t, model.Constraints{}, "2023-06-15T09:05")
	m = send(t, m, typed("2023-06-16")...)
	if m.sync.Parts().Date.String() != "2023-06-16" {
		t.Fatalf("expected typed date to apply, got %s", m.sync.Parts().Date)
	}

	m = send(t, m, key(tea.KeyTab))
	m = send(t, m, typed("14:4")...)
	if m.sync.Parts().Clock().String() != "09:05" {
		t.Fatalf("partial time must not apply, got %s", m.sync.Parts().Clock())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	if m.sync.Composite() != "2023-06-16T14:45:00" {
		t.Fatalf("unexpected composite %q", m.sync.Composite())
	}
}

func TestPicker_TimeModeClampsSteps(t *testing.T) {
	c := model.Constraints{Mode: model.ModeTime, MinTime: "13:30", MaxTime: "15:00"}
	m := newTestPicker(t, c, "2023-06-15T15:00")
	m = send(t, m, key(tea.KeyUp))
	if m.timeInput.Value() != "15:00" {
		t.Fatalf("expected clamp to 15:00, got %q", m.timeInput.Value())
	}
	e, _ := m.sync.Emitted()
	if e.String() != "15:00:00" {
		t.Fatalf("expected time emission, got %q", e.String())
	}
	if strings.Contains(m.View(), "Date is") {
		t.Fatalf("time mode must not report a bound violation")
	}
}

func TestPicker_ViewShowsViolation(t *testing.T) {
	c := model.Constraints{Mode: model.ModeBoth, MaxDate: "2023-06-17"}
	m := newTestPicker(t, c, "2023-06-17T23:30")
	if strings.Contains(m.View(), "Max Date") {
		t.Fatalf("23:30 is within the bound")
	}
	m = send(t, m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyUp))
	if !strings.Contains(m.View(), "Max Date is 2023-06-17 23:30") {
		t.Fatalf("expected violation message, got:\n%s", m.View())
	}
}

func TestPicker_ViewTruncatesToWidth(t *testing.T) {
	m := newTestPicker(t, model.Constraints{}, "2023-06-15T09:05")
	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	for _, line := range strings.Split(m.View(), "\n") {
		if lipgloss.Width(line) > 20 {
			t.Fatalf("line wider than 20 columns: %q", line)
		}
	}
}

func TestPicker_EnterAcceptsEscCancels(t *testing.T) {
	m := newTestPicker(t, model.Constraints{}, "2023-06-15T09:05")
	mAny, cmd := m.Update(key(tea.KeyEnter))
	if !mAny.(pickerModel).accepted {
		t.Fatalf("expected enter to accept")
	}
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	mAny, cmd = m.Update(key(tea.KeyEsc))
	if mAny.(pickerModel).accepted || cmd == nil {
		t.Fatalf("expected esc to cancel without accepting")
	}
}

func TestPicker_DisabledIgnoresSteps(t *testing.T) {
	m := newTestPicker(t, model.Constraints{}, "2023-06-15T09:05")
	m.sync.SetDisabled(true)
	m = send(t, m, key(tea.KeyTab), key(tea.KeyUp))
	if m.timeInput.Value() != "09:05" {
		t.Fatalf("expected disabled picker to ignore steps, got %q", m.timeInput.Value())
	}
	if !strings.Contains(m.View(), "disabled") {
		t.Fatalf("expected disabled marker in view")
	}
}

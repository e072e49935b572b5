package tui

import (
	"strings"
	"time"

	"datepick/internal/model"
	"datepick/internal/picker"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type pickerFocus int

const (
	focusDate pickerFocus = iota
	focusHour
	focusMinute
)

func (f pickerFocus) label() string {
	switch f {
	case focusHour:
		return "hour"
	case focusMinute:
		return "minute"
	default:
		return "date"
	}
}

// settleMsg runs the synchronizer's deferred post-load work once the program
// has started.
type settleMsg struct{}

func settleCmd() tea.Cmd {
	return func() tea.Msg { return settleMsg{} }
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(8)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type pickerModel struct {
	sync *picker.Synchronizer

	dateInput textinput.Model
	timeInput textinput.Model

	focus    pickerFocus
	fields   []pickerFocus
	result   picker.ValidationResult
	width    int
	accepted bool
	done     bool
}

func newPickerModel(s *picker.Synchronizer, opts Options) pickerModel {
	di := textinput.New()
	di.Placeholder = opts.DatePlaceholder
	di.CharLimit = len("2006-01-02")
	di.Prompt = ""

	ti := textinput.New()
	ti.Placeholder = opts.TimePlaceholder
	ti.CharLimit = len("15:04")
	ti.Prompt = ""

	m := pickerModel{sync: s, dateInput: di, timeInput: ti}
	switch s.Mode() {
	case model.ModeDate:
		m.fields = []pickerFocus{focusDate}
	case model.ModeTime:
		m.fields = []pickerFocus{focusHour, focusMinute}
	default:
		m.fields = []pickerFocus{focusDate, focusHour, focusMinute}
	}
	m.focus = m.fields[0]
	m.refresh()
	m.applyFocus()
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(settleCmd(), textinput.Blink)
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		if m.sync.Settle() {
			m.refresh()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		case "enter":
			m.sync.Settle()
			m.accepted = true
			m.done = true
			return m, tea.Quit
		case "tab":
			m.moveFocus(1)
			return m, nil
		case "shift+tab":
			m.moveFocus(-1)
			return m, nil
		case "up", "k":
			m.stepFocused(1)
			return m, nil
		case "down", "j":
			m.stepFocused(-1)
			return m, nil
		}
		return m.updateInput(msg)
	}
	return m, nil
}

// updateInput forwards a key to the focused text input and applies complete
// entries to the synchronizer.
func (m pickerModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusDate {
		m.dateInput, cmd = m.dateInput.Update(msg)
		v := strings.TrimSpace(m.dateInput.Value())
		if len(v) == len("2006-01-02") && m.sync.EditDateText(v) {
			m.refresh()
		}
		return m, cmd
	}

	m.timeInput, cmd = m.timeInput.Update(msg)
	if m.sync.EditTime(m.timeInput.Value()) {
		m.refresh()
	}
	return m, cmd
}

func (m *pickerModel) moveFocus(delta int) {
	idx := 0
	for i, f := range m.fields {
		if f == m.focus {
			idx = i
		}
	}
	n := len(m.fields)
	m.focus = m.fields[((idx+delta)%n+n)%n]
	m.applyFocus()
}

func (m *pickerModel) applyFocus() {
	if m.focus == focusDate {
		m.timeInput.Blur()
		m.dateInput.Focus()
		return
	}
	m.dateInput.Blur()
	m.timeInput.Focus()
}

func (m *pickerModel) stepFocused(delta int) {
	var ok bool
	switch m.focus {
	case focusHour:
		if delta > 0 {
			ok = m.sync.IncrementHour()
		} else {
			ok = m.sync.DecrementHour()
		}
	case focusMinute:
		if delta > 0 {
			ok = m.sync.IncrementMinute()
		} else {
			ok = m.sync.DecrementMinute()
		}
	default:
		d := m.sync.Parts().Date
		ok = m.sync.EditDate(time.Date(d.Year, d.Month, d.Day+delta, 12, 0, 0, 0, m.sync.Location()))
	}
	if ok {
		m.refresh()
	}
}

// refresh copies the synchronizer's parts back into the inputs.
func (m *pickerModel) refresh() {
	if m.sync.State() == picker.Uninitialized {
		return
	}
	p := m.sync.Parts()
	m.dateInput.SetValue(p.Date.String())
	m.timeInput.SetValue(p.Clock().String())
	m.result = m.sync.Check(m.sync.Value())
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	lines := []string{titleStyle.Render("datepick") + mutedStyle.Render(" ("+string(m.sync.Mode())+")"), ""}
	for _, f := range m.fields {
		if f == focusMinute {
			continue
		}
		lines = append(lines, m.fieldLine(f))
	}
	lines = append(lines, "")

	if e, ok := m.sync.Emitted(); ok {
		lines = append(lines, "value:  "+e.String())
	} else {
		lines = append(lines, mutedStyle.Render("value:  (pending)"))
	}
	if msg := m.result.Message(); msg != "" {
		lines = append(lines, invalidStyle.Render(msg))
	}
	if m.sync.Disabled() {
		lines = append(lines, mutedStyle.Render("disabled"))
	}

	lines = append(lines, "", mutedStyle.Render("tab: next field  up/down: step "+m.focus.label()+"  enter: accept  esc: cancel"))

	if m.width > 0 {
		for i, l := range lines {
			if xansi.StringWidth(l) > m.width {
				lines[i] = xansi.Truncate(l, m.width, "…")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m pickerModel) fieldLine(f pickerFocus) string {
	if f == focusDate {
		label := labelStyle.Render("date")
		if m.focus == focusDate {
			label = focusStyle.Inherit(labelStyle).Render("date")
		}
		return label + m.dateInput.View()
	}

	if m.focus == focusDate {
		return labelStyle.Render("time") + m.timeInput.View()
	}
	return focusStyle.Inherit(labelStyle).Render("time") + m.timeInput.View() + "  " + mutedStyle.Render("["+m.focus.label()+"]")
}

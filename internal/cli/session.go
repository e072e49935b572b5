package cli

import (
	"context"
	"fmt"

	"datepick/internal/model"
	"datepick/internal/picker"
	"datepick/internal/store"
)

// session wires a Synchronizer to the CLI: it collects emissions and
// diagnostics so they can be printed and, optionally, recorded.
type session struct {
	id          string
	sync        *picker.Synchronizer
	emissions   []model.Emission
	diagnostics []string
}

func newSession(app *App) *session {
	s := &session{
		id:          store.NewSessionID(),
		emissions:   []model.Emission{},
		diagnostics: []string{},
	}
	s.sync = picker.New(picker.WithLogger(app.log), picker.WithLocation(app.loc))
	s.sync.SetHooks(picker.Hooks{
		OnChange: func(e picker.Emitted) {
			s.emissions = append(s.emissions, model.Emission{
				SessionID: s.id,
				Mode:      e.Mode,
				Value:     e.String(),
				Millis:    e.Millis,
				Valid:     true,
			})
		},
		OnValidate: func(r picker.ValidationResult) {
			if len(s.emissions) == 0 {
				return
			}
			last := &s.emissions[len(s.emissions)-1]
			last.Valid = r.Valid()
			last.Reason = string(r.Reason)
		},
		OnParseError: func(err error) {
			s.diagnostics = append(s.diagnostics, err.Error())
		},
	})
	s.sync.SetBounds(app.cfg.Constraints)
	return s
}

// record appends the collected emissions to the history database.
func (s *session) record(ctx context.Context, path string) (int, error) {
	if len(s.emissions) == 0 {
		return 0, nil
	}
	h, err := store.Open(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("open history: %w", err)
	}
	defer h.Close()
	for i, e := range s.emissions {
		if _, err := h.Append(ctx, e); err != nil {
			return i, err
		}
	}
	return len(s.emissions), nil
}

func (s *session) result() map[string]any {
	out := map[string]any{
		"sessionId":   s.id,
		"snapshot":    s.sync.Snapshot(),
		"emissions":   s.emissions,
		"diagnostics": s.diagnostics,
	}
	if s.sync.State() != picker.Uninitialized {
		res := s.sync.Check(s.sync.Value())
		out["validation"] = map[string]any{
			"verdict": res.Verdict,
			"reason":  string(res.Reason),
			"bound":   res.Bound,
			"message": res.Message(),
		}
	}
	return out
}

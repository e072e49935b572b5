package cli

import (
	"time"

	"datepick/internal/picker"

	"github.com/spf13/cobra"
)

type boundReport struct {
	Input      string `json:"input"`
	Parsed     string `json:"parsed,omitempty"`
	Usable     bool   `json:"usable"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse the configured bounds and report malformed ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.cfg.Constraints
			reports := map[string]boundReport{}
			malformed := 0

			addDate := func(field, raw string, parse func(string, *time.Location) (time.Time, bool, error)) {
				if raw == "" {
					return
				}
				t, ok, diag := parse(raw, app.loc)
				r := boundReport{Input: raw, Usable: ok}
				if ok {
					r.Parsed = t.Format("2006-01-02T15:04:05")
				}
				if diag != nil {
					r.Diagnostic = diag.Error()
					malformed++
				}
				reports[field] = r
			}
			addTime := func(field, raw string) {
				if raw == "" {
					return
				}
				clock, ok, diag := picker.ParseTimeBound(field, raw)
				r := boundReport{Input: raw, Usable: ok}
				if ok {
					r.Parsed = clock.String()
				}
				if diag != nil {
					r.Diagnostic = diag.Error()
					malformed++
				}
				reports[field] = r
			}

			addDate("minDate", c.MinDate, picker.ParseMinDate)
			addDate("maxDate", c.MaxDate, picker.ParseMaxDate)
			addTime("minTime", c.MinTime)
			addTime("maxTime", c.MaxTime)

			if err := writeOut(cmd, app, map[string]any{"data": map[string]any{
				"mode":   c.Mode,
				"bounds": reports,
			}}); err != nil {
				return err
			}
			if malformed > 0 {
				return writeErr(cmd, malformedBoundsError{count: malformed})
			}
			return nil
		},
	}
}

package cli

import (
	"strings"

	"datepick/internal/picker"

	"github.com/spf13/cobra"
)

func newEvalCmd(app *App) *cobra.Command {
	var (
		value  string
		record bool
	)

	cmd := &cobra.Command{
		Use:   "eval [ops...]",
		Short: "Load a value, apply edits and print the resulting state",
		Long: strings.TrimSpace(`
Loads --value (or now), runs the deferred post-load recomposition, then applies
each op in order:

  inc-hour, dec-hour, inc-minute, dec-minute
  time=HH:mm
  date=yyyy-MM-dd

Ops the picker ignores (e.g. time=9:05) are reported with accepted=false.
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := make([]func(*picker.Synchronizer) bool, 0, len(args))
			for _, a := range args {
				op, err := parseOp(a)
				if err != nil {
					return writeErr(cmd, err)
				}
				ops = append(ops, op)
			}

			s := newSession(app)
			if err := s.sync.Load(value); err != nil {
				return writeErr(cmd, err)
			}
			s.sync.Settle()

			applied := make([]map[string]any, 0, len(args))
			for i, op := range ops {
				applied = append(applied, map[string]any{"op": args[i], "accepted": op(s.sync)})
			}

			out := s.result()
			out["ops"] = applied
			if record {
				n, err := s.record(cmd.Context(), app.cfg.HistoryPath)
				if err != nil {
					return writeErr(cmd, err)
				}
				out["recorded"] = n
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Value to load (epoch ms or yyyy-MM-dd[THH:mm[:ss]]; default now)")
	cmd.Flags().BoolVar(&record, "record", false, "Append emissions to the history database")

	return cmd
}

func parseOp(s string) (func(*picker.Synchronizer) bool, error) {
	switch {
	case s == "inc-hour":
		return (*picker.Synchronizer).IncrementHour, nil
	case s == "dec-hour":
		return (*picker.Synchronizer).DecrementHour, nil
	case s == "inc-minute":
		return (*picker.Synchronizer).IncrementMinute, nil
	case s == "dec-minute":
		return (*picker.Synchronizer).DecrementMinute, nil
	case strings.HasPrefix(s, "time="):
		text := strings.TrimPrefix(s, "time=")
		return func(p *picker.Synchronizer) bool { return p.EditTime(text) }, nil
	case strings.HasPrefix(s, "date="):
		text := strings.TrimPrefix(s, "date=")
		return func(p *picker.Synchronizer) bool { return p.EditDateText(text) }, nil
	default:
		return nil, unknownOpError{op: s}
	}
}

package cli

import (
	"datepick/internal/tui"

	"github.com/spf13/cobra"
)

type pickOptions struct {
	value  string
	record bool
}

func newPickCmd(app *App) *cobra.Command {
	var opts pickOptions

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date/time interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.value, "value", "", "Initial value (epoch ms or yyyy-MM-dd[THH:mm[:ss]]; default now)")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Append emissions to the history database")

	return cmd
}

func runPick(cmd *cobra.Command, app *App, opts pickOptions) error {
	s := newSession(app)
	if err := s.sync.Load(opts.value); err != nil {
		return writeErr(cmd, err)
	}

	res, err := tui.Run(s.sync, tui.Options{
		DatePlaceholder: app.cfg.DatePlaceholder,
		TimePlaceholder: app.cfg.TimePlaceholder,
	})
	if err != nil {
		return err
	}

	out := s.result()
	out["accepted"] = res.Accepted
	if opts.record && res.Accepted {
		n, err := s.record(cmd.Context(), app.cfg.HistoryPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		out["recorded"] = n
	}
	return writeOut(cmd, app, map[string]any{"data": out})
}

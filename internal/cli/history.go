package cli

import (
	"datepick/internal/model"
	"datepick/internal/store"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		limit     int
		sessionID string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded emissions (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := store.Open(cmd.Context(), app.cfg.HistoryPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer h.Close()

			var rows []model.Emission
			if sessionID != "" {
				rows, err = h.Session(cmd.Context(), sessionID)
			} else {
				rows, err = h.Recent(cmd.Context(), limit)
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": rows,
				"meta": map[string]any{"path": h.Path(), "count": len(rows)},
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max rows to return (0 = all)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Only show one session, oldest first")

	return cmd
}

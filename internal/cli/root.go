package cli

import (
	"fmt"
	"strings"
	"time"

	"datepick/internal/config"
	"datepick/internal/format"
	"datepick/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type App struct {
	v   *viper.Viper
	cfg *config.Config
	log *zap.Logger
	loc *time.Location
}

func NewRootCmd() *cobra.Command {
	app := &App{v: config.New()}

	cmd := &cobra.Command{
		Use:          "datepick",
		Short:        "Date/time picker value model: CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a time between 13:30 and 15:00 interactively
  datepick --mode time --min-time 13:30 --max-time 15:00

  # Check bound strings
  datepick check --min-date 2023-06-15T13:30:00 --max-date 2023-06-17

  # Script edits against a value
  datepick eval --value 2023-06-15T09:05:00 inc-hour time=14:00
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runPick(cmd, app, pickOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.String("mode", "", "Picker mode (date|time|both)")
	pf.String("min-date", "", "Lower date bound (yyyy-MM-dd, yyyy-MM-ddTHH:mm, yyyy-MM-ddTHH:mm:ss)")
	pf.String("max-date", "", "Upper date bound (date-only means 23:30:59 that day)")
	pf.String("min-time", "", "Lower time-of-day bound (HH:mm, HH:mm:ss)")
	pf.String("max-time", "", "Upper time-of-day bound (HH:mm, HH:mm:ss)")
	pf.String("tz", "", "IANA timezone for wall-clock values (default: local)")
	pf.String("format", "", "Output format (json|edn|text)")
	pf.Bool("pretty", false, "Pretty-print JSON/EDN output")
	pf.String("log-level", "", "Log level for diagnostics on stderr (debug|info|warn|error)")
	pf.String("history", "", "Path to the sqlite emission history")

	for key, flag := range map[string]string{
		"mode":         "mode",
		"min_date":     "min-date",
		"max_date":     "max-date",
		"min_time":     "min-time",
		"max_time":     "max-time",
		"timezone":     "tz",
		"format":       "format",
		"pretty":       "pretty",
		"log_level":    "log-level",
		"history_path": "history",
	} {
		_ = app.v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newEvalCmd(app))
	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) init() error {
	cfg, err := config.Load(app.v)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	app.cfg, app.loc, app.log = cfg, loc, log
	return nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Format, app.cfg.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

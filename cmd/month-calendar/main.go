package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/internal/config"
	"github.com/username/month-calendar/internal/render"
	"github.com/username/month-calendar/internal/tui"
	"github.com/username/month-calendar/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "month-calendar",
		Short: "Month calendar with holidays",
		Long:  "Show a Monday-first month grid with weekends and holidays from a holiday file",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.ExpandEnvVars()

			var fileErr error
			if cfg.Log.File != "" {
				logger, fileErr = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if fileErr == nil {
					return nil
				}
			}

			if cmd.Name() == "month-calendar" {
				// Console logs would draw over the TUI
				logger = zap.NewNop()
				if fileErr != nil {
					fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", fileErr)
				}
				return nil
			}

			initLogger(cfg.Log.Level)
			if fileErr != nil {
				logger.Warn("Log file unavailable, logging to console", zap.Error(fileErr))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(holidaysCmd())

	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showCmd() *cobra.Command {
	var year, month int
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the grid of one month",
		Example: "  month-calendar show\n" +
			"  month-calendar show --year 2024 --month 2\n" +
			"  month-calendar show --date 29/02/2024",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.Today()
			target := calendar.ByMonthSelection(today.Year(), today.Month())
			highlight := today

			if date != "" {
				explicit, err := calendar.ParseDateEntry(date)
				if err != nil {
					return err
				}
				target = explicit
				highlight = explicit.Date()
			} else {
				if cmd.Flags().Changed("year") {
					if year < dateutil.MinYear || year > dateutil.MaxYear {
						return fmt.Errorf("year must be between %d and %d, got %d", dateutil.MinYear, dateutil.MaxYear, year)
					}
					target = calendar.ByYearChange(target.Month, year)
				}
				if cmd.Flags().Changed("month") {
					if month < 1 || month > 12 {
						return fmt.Errorf("month must be between 1 and 12, got %d", month)
					}
					target = calendar.ByMonthSelection(target.Year, time.Month(month))
				}
			}

			sources := loadSources()
			grid := target.Grid(snapshot(sources))

			logger.Info("Rendering month",
				zap.Int("year", target.Year),
				zap.Int("month", int(target.Month)))

			styles := newStyles(cfg.Display, os.Stdout)
			fmt.Fprintln(cmd.OutOrStdout(), render.Month(grid, styles, highlight))
			if styles.Mark != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s weekend or holiday\n", styles.Mark)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to show (default: current year)")
	cmd.Flags().IntVar(&month, "month", 0, "Month to show, 1-12 (default: current month)")
	cmd.Flags().StringVar(&date, "date", "", "Show the month of this date (dd/mm/yyyy)")

	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check dd/mm/yyyy",
		Short:   "Tell whether a date is a holiday",
		Example: "  month-calendar check 25/12/2024",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := calendar.ParseDateEntry(args[0])
			if err != nil {
				return err
			}

			grid := target.Grid(snapshot(loadSources()))
			cell, ok := grid.Find(target.Date())
			if !ok {
				return fmt.Errorf("date %s missing from its month grid", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Describe(cell))
			return nil
		},
	}
}

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays",
		Short: "List the holiday rules read from the configured files",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, source := range loadSources() {
				registry := source.Registry()
				fmt.Fprintf(out, "%s: %d rule(s), %d skipped\n", source.FilePath(), registry.Len(), registry.Skipped())
				for _, rule := range registry.Rules() {
					fmt.Fprintf(out, "  %s\n", formatRule(rule))
				}
			}
			return nil
		},
	}
}

func runTUI() error {
	sources := loadSources()

	model := tui.NewModel(tui.Options{
		Holidays: snapshot(sources),
		Reload: func() (calendar.HolidayChecker, error) {
			for _, source := range sources {
				if err := source.Load(); err != nil {
					return nil, err
				}
			}
			return snapshot(sources), nil
		},
		Styles: newStyles(cfg.Display, os.Stdout),
		Logger: logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.Holidays.Watch {
		for _, source := range sources {
			stop, err := source.Watch(func(*calendar.HolidayRegistry) {
				program.Send(tui.HolidaysReloadedMsg{Holidays: snapshot(sources)})
			})
			if err != nil {
				logger.Warn("Holiday file will not be watched",
					zap.String("file", source.FilePath()),
					zap.Error(err))
				continue
			}
			defer stop()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run calendar: %w", err)
	}
	return nil
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

// initFileLogger fails when the log file cannot be created, so the
// caller can fall back to the console.
func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	_ = f.Close()

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

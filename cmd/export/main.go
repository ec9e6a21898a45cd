// Command export builds the NHL stats spreadsheet from the command line.
//
// Usage:
//
//	nhl-export run --duration 7 --threshold 0.5
//	nhl-export run --all-time --out all-time.xlsx
//	nhl-export seasons --duration 3
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/nhl-stats-export/internal/config"
	"github.com/albapepper/nhl-stats-export/internal/export"
	"github.com/albapepper/nhl-stats-export/internal/provider/nhl"
	"github.com/albapepper/nhl-stats-export/internal/season"
	"github.com/albapepper/nhl-stats-export/internal/sheet"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "nhl-export",
		Short: "NHL multi-season stats export CLI",
	}

	root.AddCommand(runCmd())
	root.AddCommand(seasonsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	var (
		duration  int
		threshold float64
		allTime   bool
		out       string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch stats and write the .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("duration") {
				duration = cfg.DefaultDuration
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.DefaultThreshold
			}
			duration = season.Clamp(duration, 1, cfg.MaxDuration)
			if allTime {
				duration = season.AllTime(time.Now())
			}
			if out == "" {
				out = sheet.Filename(duration)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			client := nhl.NewClient(cfg.ClientOptions(), logger)
			exporter := export.New(client, cfg.ExportConfig(), logger)

			res, err := exporter.Run(ctx, export.Request{Duration: duration, Threshold: threshold})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := sheet.Write(f, res.Rows); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}

			logger.Info("Export written", "file", out, "run_id", res.RunID, "summary", res.Summary())
			return nil
		},
	}
	cmd.Flags().IntVar(&duration, "duration", 7, "Number of seasons (clamped to 1..EXPORT_MAX_DURATION)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "Hit rate threshold")
	cmd.Flags().BoolVar(&allTime, "all-time", false, "Every season since 1917-1918")
	cmd.Flags().StringVar(&out, "out", "", "Output path (default nhl-<duration>-seasons.xlsx)")
	return cmd
}

// --------------------------------------------------------------------------
// seasons command
// --------------------------------------------------------------------------

func seasonsCmd() *cobra.Command {
	var (
		duration int
		allTime  bool
	)
	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "Print the seasons an export would cover",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if allTime {
				duration = season.AllTime(now)
			}
			for _, id := range season.NewRange(now, duration) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, id.Label())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&duration, "duration", 7, "Number of seasons")
	cmd.Flags().BoolVar(&allTime, "all-time", false, "Every season since 1917-1918")
	return cmd
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return cfg, nil
}

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/timvw/port-patrol/internal/config"
	"github.com/timvw/port-patrol/internal/serialio"
)

var (
	flagWatchBaud int
	flagWatchTime bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [port]",
	Short: "Stream received lines from a port to stdout",
	Long: `Open a serial port and print every received line until interrupted.

The port argument falls back to the configured port. Settings come from
.port-patrol.yaml or environment variables; --baud overrides the rate.

This is pure transport — received bytes are split into lines and printed
as-is, no interpretation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if len(args) == 1 {
			cfg.Port = args[0]
		}
		if flagWatchBaud > 0 {
			cfg.BaudRate = flagWatchBaud
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}

		settings, err := cfg.SerialSettings()
		if err != nil {
			return err
		}
		if err := settings.Validate(); err != nil {
			return err
		}

		opener, err := getOpener(ctx, cfg.Backend)
		if err != nil {
			return err
		}
		port, err := opener.Open(ctx, settings)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", settings.Port, err)
		}

		fmt.Fprintf(os.Stderr, "watching %s (ctrl+c to stop)\n", settings)

		pump := serialio.NewPump(port)
		pump.Start()
		defer pump.Close()

		ticker := time.NewTicker(cfg.RefreshDuration)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				lines, _ := pump.Drain()
				printWatchLines(lines)
				if pump.Done() {
					lines, _ = pump.Drain()
					printWatchLines(lines)
					return pump.Err()
				}
			}
		}
	},
}

// printWatchLines writes drained lines to stdout, timestamped when asked.
func printWatchLines(lines []string) {
	for _, line := range lines {
		if flagWatchTime {
			fmt.Printf("%s %s\n", time.Now().Format("15:04:05.000"), line)
		} else {
			fmt.Println(line)
		}
	}
}

func init() {
	watchCmd.Flags().IntVar(&flagWatchBaud, "baud", 0, "baud rate override")
	watchCmd.Flags().BoolVar(&flagWatchTime, "timestamps", false, "prefix each line with the receive time")
	rootCmd.AddCommand(watchCmd)
}

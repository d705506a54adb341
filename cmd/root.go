package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/timvw/port-patrol/internal/serialio"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	// Global flags.
	flagBackend string
)

var rootCmd = &cobra.Command{
	Use:   "port-patrol",
	Short: "Multi-session serial port monitor for the terminal",
	Long: `port-patrol watches serial ports from a tabbed, split-pane terminal UI.

Each session owns one port with its own settings, receive log, and
connection state. Sessions stack into single, split, and grid layouts
so several ports can be watched side by side, and any pane can transmit
as well as receive.

When no serial hardware is present, a loopback backend stands in so the
UI can be used and demoed without devices.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "",
		"serial backend: device, loopback (default: from config, or auto-detect)")
}

// getOpener returns the serial backend selected by name, or auto-detects
// one when the name is empty or "auto".
func getOpener(ctx context.Context, name string) (serialio.Opener, error) {
	if name != "" && name != "auto" {
		return serialio.FromName(name)
	}
	return serialio.Detect(ctx), nil
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

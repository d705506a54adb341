package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timvw/port-patrol/internal/config"
	"github.com/timvw/port-patrol/internal/monitor"
)

var (
	flagSendPort   string
	flagSendEnding string
)

var sendCmd = &cobra.Command{
	Use:   "send <text>...",
	Short: "Transmit a line of text to a port",
	Long: `Open a serial port, write the given text plus a line ending, and exit.

The port comes from --port or the configuration. Multiple arguments are
joined with single spaces before sending.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if flagSendPort != "" {
			cfg.Port = flagSendPort
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
		ending, err := monitor.ParseAppendMode(flagSendEnding)
		if err != nil {
			return err
		}

		opener, err := getOpener(cmd.Context(), cfg.Backend)
		if err != nil {
			return err
		}
		port, err := opener.Open(cmd.Context(), settings)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", settings.Port, err)
		}
		defer port.Close()

		payload := append([]byte(strings.Join(args, " ")), ending.Bytes()...)
		n, err := port.Write(payload)
		if err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "sent %d bytes to %s\n", n, settings.Port)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&flagSendPort, "port", "", "serial port (overrides config)")
	sendCmd.Flags().StringVar(&flagSendEnding, "line-ending", "crlf", "appended line ending: none, lf, cr, crlf, lfcr")
	rootCmd.AddCommand(sendCmd)
}

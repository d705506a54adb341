package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/timvw/port-patrol/internal/config"
	"github.com/timvw/port-patrol/internal/layout"
	"github.com/timvw/port-patrol/internal/monitor"
	telem "github.com/timvw/port-patrol/internal/otel"
	"github.com/timvw/port-patrol/internal/workspace"
)

var (
	flagTheme  string
	flagPort   string
	flagBaud   int
	flagLayout string
	flagNoTabs bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Interactive TUI to watch and talk to serial ports",
	Long: `Launch the interactive terminal UI.

Sessions appear as tabs; the pane layout shows one or more of them at a
time. The focused pane receives connection, transmit, and scroll
commands. Press ? inside the UI for the full key map.

Configuration is loaded from .port-patrol.yaml or environment variables;
flags override both. See the README for all configuration options.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMonitor(cmd)
	},
}

func init() {
	monitorCmd.Flags().StringVar(&flagTheme, "theme", envOrDefault("PORT_PATROL_THEME", "dark"),
		"Color theme: dark, light")
	monitorCmd.Flags().StringVar(&flagPort, "port", "",
		"serial port for the first session (e.g. /dev/ttyUSB0)")
	monitorCmd.Flags().IntVar(&flagBaud, "baud", 0,
		"baud rate for the first session")
	monitorCmd.Flags().StringVar(&flagLayout, "layout", "",
		"initial layout: single, split-horizontal, split-vertical, grid-2x2, grid-1x2, grid-2x1")
	monitorCmd.Flags().BoolVar(&flagNoTabs, "no-tabs", false,
		"start with the tab bar hidden")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration: defaults -> config file -> env vars.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.ConfigFile != "" {
		fmt.Fprintf(os.Stderr, "config: loaded %s\n", cfg.ConfigFile)
	}

	// Flags override file and environment.
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagBaud > 0 {
		cfg.BaudRate = flagBaud
	}
	if flagLayout != "" {
		cfg.Layout = flagLayout
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}

	settings, err := cfg.SerialSettings()
	if err != nil {
		return err
	}
	mode, err := layout.ParseMode(cfg.Layout)
	if err != nil {
		return err
	}

	// Wire build version into OTEL service metadata
	telem.Version = Version

	// Initialize OTEL (no-op if no endpoint configured)
	tel, err := telem.Init(ctx, telem.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: otel init failed: %v\n", err)
	}
	if tel != nil {
		defer tel.Shutdown(ctx)
	}

	opener, err := getOpener(ctx, cfg.Backend)
	if err != nil {
		return err
	}
	if opener.Name() == "loopback" && cfg.Backend != "loopback" {
		fmt.Fprintln(os.Stderr, "no serial devices found, using the loopback backend")
	}

	ws := workspace.New()
	ws.Sessions().SetLogLimit(cfg.LogLimit)
	ws.ActiveSession().Settings = settings
	ws.SetLayout(mode)
	if flagNoTabs {
		ws.SetShowTabs(false)
	}

	tui := &monitor.TUI{
		Workspace: ws,
		Opener:    opener,
		Telemetry: tel,
		ThemeName: flagTheme,
		Refresh:   cfg.RefreshDuration,
		Defaults:  settings,
	}
	return tui.Run(ctx)
}

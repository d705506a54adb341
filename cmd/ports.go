package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available serial ports",
	Long: `List the serial ports the selected backend can open.

Each line is a port name usable in a session's settings or with the
--port flag. With --backend loopback the virtual loopback ports are
listed instead of real devices.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opener, err := getOpener(cmd.Context(), flagBackend)
		if err != nil {
			return err
		}

		ports, err := opener.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list ports: %w", err)
		}

		if len(ports) == 0 {
			fmt.Fprintln(os.Stderr, "no serial ports found")
			return nil
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}

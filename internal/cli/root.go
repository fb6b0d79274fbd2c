// Package cli implements the suntray CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/suntray-io/suntray/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "suntray",
	Short: "Control the Suntray color-temperature supervisor",
	Long: `Suntray supervises the hyprsunset color-temperature daemon from the
system tray. This CLI talks to the running supervisor over its control socket.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.InitConsoleLogging("warn")
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tempCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(versionCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suntray-io/suntray/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", render(styleBrand, "suntray"), render(styleVersion, buildinfo.Version))
		fmt.Printf("%s %s\n", render(styleLabel, "commit:"), buildinfo.CommitHash)
		fmt.Printf("%s %s\n", render(styleLabel, "built:"), buildinfo.BuildDate)
	},
}

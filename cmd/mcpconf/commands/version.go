package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpconf/cmd"
	"github.com/thoreinstein/mcpconf/internal/catalog"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long: `Print the version, commit, and build date of mcpconf, along with
the detection status of every known client on this machine.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("mcpconf version %s\n", cmd.Version)
		fmt.Printf("  commit:    %s\n", cmd.Commit)
		fmt.Printf("  built:     %s\n", cmd.Date)
		fmt.Printf("  go:        %s\n", runtime.Version())
		fmt.Printf("  clients:\n")
		for _, desc := range catalog.All() {
			status := "not installed"
			if catalog.Installed(desc, runtime.GOOS) {
				status = "installed"
			}
			fmt.Printf("    %-15s %s\n", desc.ID+":", status)
		}
	},
}

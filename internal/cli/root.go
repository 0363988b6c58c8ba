package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Parse, normalize, inspect and walk filesystem paths",
	Long: `pathkit works on filesystem paths the same way on every host.

Paths are parsed with both '/' and '\' as separators and may carry a drive
designator such as C:. Lexical commands (normalize, join) never touch the disk.
Filesystem commands (abs, inspect, walk, mkdir, rm) treat a missing path as an
answer, not as an error.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or mapping
  11 - Filesystem fault (permission denied, device error)
  12 - Path cannot be used for the requested operation`,
	SilenceUsage: true,
}

// rootFlags holds the persistent flags shared by every command.
var rootFlags struct {
	verbose    bool
	configPath string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for pathkit")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "",
		"Configuration file (default: $PATHKIT_CONFIG, then ./pathkit.yaml)")
}

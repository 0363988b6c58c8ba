package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var mkdirFlags struct {
	parents bool
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>...",
	Short: "Create directories",
	Long: `Create each directory. An existing directory is not an error.
With --parents, missing parent directories are created first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMkdir,
}

var rmCmd = &cobra.Command{
	Use:   "rm <file>...",
	Short: "Remove regular files",
	Long: `Remove each path that is a regular file. Directories and missing paths
are reported and left alone.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmCmd)

	mkdirCmd.Flags().BoolVarP(&mkdirFlags.parents, "parents", "p", false, "Create missing parent directories")
	mkdirCmd.ValidArgsFunction = completePaths(true)
	rmCmd.ValidArgsFunction = completePaths(false)
}

func runMkdir(cmd *cobra.Command, args []string) error {
	tk := newToolkit(cmd)

	for _, arg := range args {
		if err := tk.probe.CreateDir(pathkit.New(arg), mkdirFlags.parents); err != nil {
			return err
		}
		tk.logger.Verbose("created %s", arg)
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	tk := newToolkit(cmd)
	out := cmd.OutOrStdout()

	for _, arg := range args {
		removed, err := tk.probe.RemoveFile(pathkit.New(arg))
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(out, "Removed: %s\n", arg)
		} else {
			fmt.Fprintf(out, "Skipped: %s (not a regular file)\n", arg)
		}
	}
	return nil
}

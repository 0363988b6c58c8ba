package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var normalizeFlags struct {
	slash bool
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <path>...",
	Short: "Remove . and .. components without touching the disk",
	Long: `Normalize each path lexically and print it, one per line.

A ".." cancels the component before it. Leading ".." components are kept for
relative paths and dropped for absolute ones, which cannot climb above their
root. Symbolic links are not resolved.`,
	Example: `  pathkit normalize a/./b/../c        # a/c
  pathkit normalize /a/../../b         # /b
  pathkit normalize --slash 'C:\x\..\y' # C:/y`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

var joinFlags struct {
	normalize bool
	slash     bool
}

var joinCmd = &cobra.Command{
	Use:   "join <base> <element>...",
	Short: "Append path elements to a base path",
	Long: `Join elements onto base and print the result.

The result keeps the drive and the absolute flag of base: an element that is
itself absolute only contributes its components. The result is not normalized
unless --normalize is given.`,
	Example: `  pathkit join /srv www ../logs        # /srv/www/../logs
  pathkit join --normalize /srv www ../logs  # /srv/logs`,
	Args: cobra.MinimumNArgs(2),
	RunE: runJoin,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(joinCmd)

	normalizeCmd.Flags().BoolVar(&normalizeFlags.slash, "slash", false, "Render with '/' whatever the host separator is")

	joinCmd.Flags().BoolVar(&joinFlags.normalize, "normalize", false, "Normalize the joined path")
	joinCmd.Flags().BoolVar(&joinFlags.slash, "slash", false, "Render with '/' whatever the host separator is")
}

func render(p pathkit.Path, slash bool) string {
	if slash {
		return p.ToSlash()
	}
	return p.String()
}

func runNormalize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		fmt.Fprintln(out, render(pathkit.New(arg).Normalized(), normalizeFlags.slash))
	}
	return nil
}

func runJoin(cmd *cobra.Command, args []string) error {
	joined := pathkit.Join(args[0], args[1:]...)
	if joinFlags.normalize {
		joined.Normalize()
	}
	fmt.Fprintln(cmd.OutOrStdout(), render(joined, joinFlags.slash))
	return nil
}

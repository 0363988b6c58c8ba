package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var absFlags struct {
	slash bool
}

var absCmd = &cobra.Command{
	Use:   "abs <path>...",
	Short: "Make paths absolute against the working directory",
	Long: `Prefix each relative path with the working directory, normalize it and
print it. Absolute paths are only normalized.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAbs,
}

func init() {
	rootCmd.AddCommand(absCmd)

	absCmd.Flags().BoolVar(&absFlags.slash, "slash", false, "Render with '/' whatever the host separator is")
	absCmd.ValidArgsFunction = completePaths(false)
}

func runAbs(cmd *cobra.Command, args []string) error {
	tk := newToolkit(cmd)
	out := cmd.OutOrStdout()

	for _, arg := range args {
		p := pathkit.New(arg)
		if err := tk.probe.MakeAbsolute(&p); err != nil {
			return err
		}
		fmt.Fprintln(out, render(p, absFlags.slash))
	}
	return nil
}

var sameCmd = &cobra.Command{
	Use:   "same <path> <path>",
	Short: "Tell whether two paths designate the same location",
	Long: `Make both paths absolute, normalize them and compare the results.
The comparison ignores case on Windows. Prints true or false.`,
	Args: cobra.ExactArgs(2),
	RunE: runSame,
}

func init() {
	rootCmd.AddCommand(sameCmd)
	sameCmd.ValidArgsFunction = completePaths(false)
}

func runSame(cmd *cobra.Command, args []string) error {
	tk := newToolkit(cmd)

	same, err := tk.probe.Same(pathkit.New(args[0]), pathkit.New(args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), same)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/checksum"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var walkFlags struct {
	recursive bool
	limit     int
	ext       string
	hidden    bool
	slash     bool
	digest    string
}

var walkCmd = &cobra.Command{
	Use:   "walk <dir>",
	Short: "List the entries of a directory",
	Long: `Print every entry of dir, one per line, as "Found directory: <path>" or
"Found file: <path>". With --recursive, each subdirectory is listed right after
its own line. Symbolic links to directories are followed, except when they
lead back to a directory already being walked.

A dir that does not exist or is not a directory prints nothing.

With --digest, a final "Digest (<algorithm>): <hex>" line fingerprints the
printed entries by their path relative to dir. Two trees with the same shape
share a digest wherever they are rooted. File contents are not read.

Defaults for --recursive and --hidden come from the walk section of
pathkit.yaml.`,
	Example: `  pathkit walk . --recursive --ext go
  pathkit walk /var/log --limit 10
  pathkit walk ./build -r --digest blake3`,
	Args: cobra.ExactArgs(1),
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)

	walkCmd.Flags().BoolVarP(&walkFlags.recursive, "recursive", "r", false, "Descend into subdirectories")
	walkCmd.Flags().IntVarP(&walkFlags.limit, "limit", "n", 0, "Stop after printing this many entries (0 for no limit)")
	walkCmd.Flags().StringVar(&walkFlags.ext, "ext", "", "Only print files with this extension")
	walkCmd.Flags().BoolVar(&walkFlags.hidden, "hidden", false, "Print entries whose name starts with a dot")
	walkCmd.Flags().BoolVar(&walkFlags.slash, "slash", false, "Render with '/' whatever the host separator is")
	walkCmd.Flags().StringVar(&walkFlags.digest, "digest", "",
		fmt.Sprintf("Print a digest of the listing (%s)", strings.Join(checksum.Names(), ", ")))
	_ = walkCmd.RegisterFlagCompletionFunc("digest", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return checksum.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	walkCmd.ValidArgsFunction = completePaths(true)
}

func runWalk(cmd *cobra.Command, args []string) error {
	if walkFlags.limit < 0 {
		return fmt.Errorf("invalid argument %d for \"--limit\" flag: must not be negative", walkFlags.limit)
	}
	var listing *checksum.Listing
	if walkFlags.digest != "" {
		calc, err := checksum.ForName(walkFlags.digest)
		if err != nil {
			return fmt.Errorf("invalid argument %q for \"--digest\" flag: %w", walkFlags.digest, err)
		}
		listing = checksum.NewListing(calc)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	recursive := walkFlags.recursive
	if !cmd.Flags().Changed("recursive") {
		recursive = cfg.Walk.Recursive
	}
	hidden := walkFlags.hidden
	if !cmd.Flags().Changed("hidden") {
		hidden = cfg.Walk.ShowHidden
	}

	tk := newToolkit(cmd)
	root := pathkit.New(args[0])
	out := cmd.OutOrStdout()
	printed := 0

	completed, err := tk.walker.Each(root, func(entry pathkit.Path) bool {
		if !hidden && isHiddenBelow(root, entry) {
			return true
		}

		isDir, err := tk.probe.IsDir(entry)
		if err != nil {
			tk.logger.Error("%v", err)
			return true
		}
		if isDir {
			if walkFlags.ext != "" {
				return true
			}
			fmt.Fprintf(out, "Found directory: %s\n", render(entry, walkFlags.slash))
			if listing != nil {
				listing.Add(relativeTo(root, entry) + "/")
			}
		} else {
			if walkFlags.ext != "" && !entry.HasExtension(walkFlags.ext) {
				return true
			}
			fmt.Fprintf(out, "Found file: %s\n", render(entry, walkFlags.slash))
			if listing != nil {
				listing.Add(relativeTo(root, entry))
			}
		}

		printed++
		return walkFlags.limit == 0 || printed < walkFlags.limit
	}, recursive)
	if err != nil {
		return err
	}

	if !completed {
		tk.logger.Verbose("walk stopped after %d entries", printed)
	}
	if listing != nil {
		tk.logger.Verbose("digesting %d entries", listing.Len())
		fmt.Fprintf(out, "Digest (%s): %s\n", listing.Name(), listing.Sum())
	}
	return nil
}

// relativeTo renders the components of entry below root joined with '/'.
func relativeTo(root, entry pathkit.Path) string {
	return strings.Join(entry.Components()[root.Len():], "/")
}

// isHiddenBelow reports whether a component of entry below root starts with
// a dot.
func isHiddenBelow(root, entry pathkit.Path) bool {
	for i := root.Len(); i < entry.Len(); i++ {
		if strings.HasPrefix(entry.Component(i), ".") {
			return true
		}
	}
	return false
}

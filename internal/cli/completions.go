package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// completePaths provides shell completion for filesystem paths, listing the
// entries of the directory being typed whose name starts with the last
// partial component. Matching ignores case. Directories get a trailing '/'
// so completion can continue into them.
func completePaths(dirsOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		tk := newToolkit(cmd)
		return pathCandidates(tk, toComplete, dirsOnly), cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}

// splitCompletion splits input at its last separator.
//
//	"./src/com" → ("./src/", "com")
//	"./src/"    → ("./src/", "")
//	"my"        → ("", "my")
//	""          → ("", "")
func splitCompletion(input string) (dir, prefix string) {
	i := strings.LastIndexAny(input, `/\`)
	return input[:i+1], input[i+1:]
}

func pathCandidates(tk *toolkit, input string, dirsOnly bool) []string {
	dir, prefix := splitCompletion(input)
	lowPrefix := strings.ToLower(prefix)

	var matches []string
	_, err := tk.walker.Each(pathkit.New(dir), func(entry pathkit.Path) bool {
		name := entry.Basename()
		if !strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			return true
		}
		isDir, err := tk.probe.IsDir(entry)
		if err != nil {
			return true
		}
		switch {
		case isDir:
			matches = append(matches, dir+name+"/")
		case !dirsOnly:
			matches = append(matches, dir+name)
		}
		return true
	}, false)
	if err != nil {
		tk.logger.Verbose("completion: %v", err)
		return nil
	}
	return matches
}

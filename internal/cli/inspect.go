package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/tui"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>...",
	Short: "Show how a path is parsed and what it refers to",
	Long: `Print the parsed form of each path (drive, absolute flag, components,
basename, dirname, extension), its normalized and absolute forms, and what
exists at that location.

Output is styled on an interactive terminal. Set PATHKIT_NON_INTERACTIVE=1 or
NO_COLOR to force plain output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.ValidArgsFunction = completePaths(false)
}

func runInspect(cmd *cobra.Command, args []string) error {
	tk := newToolkit(cmd)
	interactive := tui.IsInteractive()
	out := cmd.OutOrStdout()

	for _, arg := range args {
		report, err := buildInspectReport(tk.probe, arg)
		if err != nil {
			return err
		}
		fmt.Fprint(out, report.Render(interactive))
	}
	return nil
}

func buildInspectReport(probe *pathkit.Probe, arg string) (*tui.Report, error) {
	p := pathkit.New(arg)

	abs, err := probe.Absolute(p)
	if err != nil {
		return nil, err
	}

	r := &tui.Report{Title: arg}
	r.Add("absolute", strconv.FormatBool(p.IsAbsolute()))
	if p.Drive() != "" {
		r.Add("drive", p.Drive())
	}
	r.Add("components", fmt.Sprintf("%d [%s]", p.Len(), strings.Join(p.Components(), ", ")))
	r.Add("basename", p.Basename())
	r.Add("dirname", p.Dirname())
	r.Add("extension", p.Extension())
	r.Add("normalized", p.Normalized().String())
	r.Add("full path", abs.String())

	isDir, err := probe.IsDir(abs)
	if err != nil {
		return nil, err
	}
	isFile, err := probe.IsFile(abs)
	if err != nil {
		return nil, err
	}

	switch {
	case isDir:
		r.AddStyled("kind", "directory", tui.SuccessStyle)
	case isFile:
		r.AddStyled("kind", "file", tui.SuccessStyle)
		size, err := probe.FileSize(abs)
		if err != nil {
			return nil, err
		}
		r.Add("size", fmt.Sprintf("%s (%d bytes)", humanize.Bytes(uint64(size)), size))
	default:
		exists, err := probe.Exists(abs)
		if err != nil {
			return nil, err
		}
		if exists {
			r.AddStyled("kind", "other", tui.WarningStyle)
		} else {
			r.AddStyled("kind", "missing", tui.MutedStyle)
		}
	}

	r.Add("identity", p.Identity().String())
	return r, nil
}

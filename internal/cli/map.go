package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/dirmap"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var mapFlags struct {
	mappings     []string
	mappingsFile string
	host         string
}

var mapCmd = &cobra.Command{
	Use:   "map <path>...",
	Short: "Translate paths between Windows drives and Unix mount points",
	Long: `Rewrite each path through the configured directory mappings and print it.

On a Unix host, paths such as z:\home\me are rewritten to their Unix location;
on a Windows host, Unix paths are rewritten to their drive location. The
longest matching prefix wins and paths nothing matches are printed unchanged.

Mappings are read from the mappings section of pathkit.yaml, then from the
mappings file (lines of "windows = unix") named by --mappings-file or by
mappings_file in pathkit.yaml, then from --mapping flags.`,
	Example: `  pathkit map --mapping 'z:/home=/Users' 'z:\home\me\notes.txt'
  pathkit map --host windows --mapping 'z:/work=/Work' /Work/show`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringArrayVarP(&mapFlags.mappings, "mapping", "m", nil, "Prefix pair as windows=unix (repeatable)")
	mapCmd.Flags().StringVar(&mapFlags.mappingsFile, "mappings-file", "", "File of \"windows = unix\" lines")
	mapCmd.Flags().StringVar(&mapFlags.host, "host", "auto", "Translate as this host would: auto, unix or windows")
	_ = mapCmd.RegisterFlagCompletionFunc("host", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "unix", "windows"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func newMapper(host string) (*dirmap.Mapper, error) {
	switch host {
	case "auto", "":
		return dirmap.NewForHost(runtime.GOOS == "windows"), nil
	case "unix":
		return dirmap.NewForHost(false), nil
	case "windows":
		return dirmap.NewForHost(true), nil
	default:
		return nil, fmt.Errorf("invalid argument %q for \"--host\" flag: must be auto, unix or windows", host)
	}
}

func runMap(cmd *cobra.Command, args []string) error {
	mapper, err := newMapper(mapFlags.host)
	if err != nil {
		return err
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	cfg.Apply(mapper)

	tk := newToolkit(cmd)
	mappingsFile := cfg.MappingsFile
	if mapFlags.mappingsFile != "" {
		mappingsFile = pathkit.New(mapFlags.mappingsFile)
	}
	if !mappingsFile.IsEmpty() {
		if err := loadMappingsFile(tk, mapper, mappingsFile); err != nil {
			return err
		}
	}
	for _, value := range mapFlags.mappings {
		windows, unix, err := dirmap.ParsePair(value)
		if err != nil {
			return err
		}
		mapper.Add(windows, unix)
	}
	tk.logger.Verbose("%d directory mappings loaded", mapper.Len())

	out := cmd.OutOrStdout()
	for _, arg := range args {
		fmt.Fprintln(out, mapper.Map(arg))
	}
	return nil
}

func loadMappingsFile(tk *toolkit, mapper *dirmap.Mapper, p pathkit.Path) error {
	reader, ok := tk.fsys.(dirmap.FileReader)
	if !ok {
		return fmt.Errorf("%w: mappings file %s: filesystem cannot read files", pathkit.ErrIO, p)
	}
	loaded, err := mapper.LoadFile(reader, p)
	if err != nil {
		return err
	}
	if !loaded {
		return fmt.Errorf("%w: mappings file %s is not a regular file", pathkit.ErrInvalidConfig, p)
	}
	return nil
}

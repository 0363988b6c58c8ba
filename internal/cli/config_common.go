package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/config"
	"github.com/vvka-141/pathkit/internal/files/filesystem"
	"github.com/vvka-141/pathkit/internal/logging"
	"github.com/vvka-141/pathkit/internal/tui"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// loadProjectConfig loads godotenv and project configuration.
// A missing pathkit.yaml yields an empty configuration.
func loadProjectConfig() (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: getwd: %w", pathkit.ErrIO, err)
	}

	cfg, err := config.Resolve(rootFlags.configPath, cwd)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates the console logger for cmd, honouring --verbose.
func newLogger(cmd *cobra.Command) pathkit.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), rootFlags.verbose, !tui.ColorEnabled())
}

// toolkit bundles the probe and walker used by filesystem commands.
type toolkit struct {
	fsys   pathkit.FileSystem
	logger pathkit.Logger
	probe  *pathkit.Probe
	walker *pathkit.Walker
}

// fileSystemFactory creates the filesystem commands operate on.
// Tests replace it with an in-memory implementation.
var fileSystemFactory = func() pathkit.FileSystem {
	return filesystem.NewOSFileSystem()
}

func newToolkit(cmd *cobra.Command) *toolkit {
	logger := newLogger(cmd)
	fsys := fileSystemFactory()
	return &toolkit{
		fsys:   fsys,
		logger: logger,
		probe:  pathkit.NewProbe(fsys, logger),
		walker: pathkit.NewWalker(fsys, logger),
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vvka-141/pathkit/internal/dirmap"
	"github.com/vvka-141/pathkit/pkg/pathkit"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Mapping pairs a Windows prefix with the Unix prefix it is mounted at.
type Mapping struct {
	Windows string `yaml:"windows"`
	Unix    string `yaml:"unix"`
}

type WalkConfig struct {
	Recursive  bool `yaml:"recursive"`
	ShowHidden bool `yaml:"show_hidden"`
}

type ProjectConfig struct {
	Mappings []Mapping `yaml:"mappings"`
	// MappingsFile names a file of "windows = unix" lines. A relative path is
	// taken from the directory holding the configuration file.
	MappingsFile pathkit.Path `yaml:"mappings_file"`
	Walk         WalkConfig   `yaml:"walk"`
}

// Load reads pathkit.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, pathkit.ConfigFileName))
}

// LoadFile reads the configuration file at configPath.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pathkit.ErrInvalidConfig, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	if !cfg.MappingsFile.IsEmpty() && !cfg.MappingsFile.IsAbsolute() {
		cfg.MappingsFile = pathkit.New(filepath.Dir(configPath)).Append(cfg.MappingsFile)
	}
	return &cfg, nil
}

// Resolve loads the configuration from explicitPath when set, then from the
// PATHKIT_CONFIG environment variable, then from pathkit.yaml in dir. A
// missing file is only an error when it was named explicitly.
func Resolve(explicitPath, dir string) (*ProjectConfig, error) {
	configPath := explicitPath
	if configPath == "" {
		configPath = os.Getenv(pathkit.EnvConfigPath)
	}
	if configPath != "" {
		cfg, err := LoadFile(configPath)
		if errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s", pathkit.ErrInvalidConfig, err)
		}
		return cfg, err
	}

	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return &ProjectConfig{}, nil
	}
	return cfg, err
}

// Validate checks that every mapping has a Windows prefix on the windows side
// and a non-empty Unix prefix.
func (c *ProjectConfig) Validate() error {
	for i, m := range c.Mappings {
		if !dirmap.IsWindowsPath(m.Windows) {
			return fmt.Errorf("%w: mappings[%d]: windows prefix %q must start with a drive and a separator", pathkit.ErrInvalidConfig, i, m.Windows)
		}
		if m.Unix == "" || dirmap.IsWindowsPath(m.Unix) {
			return fmt.Errorf("%w: mappings[%d]: unix prefix %q is not a unix path", pathkit.ErrInvalidConfig, i, m.Unix)
		}
	}
	return nil
}

// Apply registers the configured mappings on m.
func (c *ProjectConfig) Apply(m *dirmap.Mapper) {
	for _, mapping := range c.Mappings {
		m.Add(mapping.Windows, mapping.Unix)
	}
}

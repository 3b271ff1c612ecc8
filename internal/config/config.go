package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/plug-resources/internal/logger"
	"github.com/oshokin/plug-resources/internal/project"
)

// Config holds the inputs of a resource preparation run.
type Config struct {
	// ProjectPath is the plugin project directory holding config.h.
	ProjectPath string `yaml:"project_path"`
	// XcconfigPath is the path to common-mac.xcconfig. Relative paths are
	// resolved against ProjectPath.
	XcconfigPath string `yaml:"xcconfig_path"`
	// ResourcesDir holds the Info.plist files and the resource sources,
	// relative to ProjectPath.
	ResourcesDir string `yaml:"resources_dir"`
	// SourceDirs are the resource folders copied to the destination,
	// relative to ResourcesDir.
	SourceDirs []string `yaml:"source_dirs"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the settings file looked up when --config is not given.
	DefaultConfigFilename = "prepare-resources.yaml"

	// DefaultResourcesDir is the project-relative resources folder.
	DefaultResourcesDir = "resources"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the mode of saved settings files.
	DefaultFilePermissions = 0o600
)

// ErrInvalidSettings marks settings that fail validation.
var ErrInvalidSettings = errors.New("invalid settings")

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// DefaultSourceDirs returns the resource folders copied by default.
func DefaultSourceDirs() []string {
	return []string{"img", "fonts"}
}

// DefaultXcconfigPath returns the xcconfig location for a project inside an
// iPlug2 checkout (<root>/Examples/<project>).
func DefaultXcconfigPath() string {
	return filepath.Join("..", "..", project.XcconfigFilename)
}

// Load reads settings from path. When optional is set, a missing file
// yields defaults instead of an error.
func Load(path string, optional bool) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	var cfg Config

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and rejects unusable values.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ResourcesDir == "" {
		settings.ResourcesDir = DefaultResourcesDir
	}

	if filepath.IsAbs(settings.ResourcesDir) {
		return fmt.Errorf("%w: resources_dir must be relative to the project: %s",
			ErrInvalidSettings, settings.ResourcesDir)
	}

	if len(settings.SourceDirs) == 0 {
		settings.SourceDirs = DefaultSourceDirs()
	}

	for _, dir := range settings.SourceDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%w: empty entry in source_dirs", ErrInvalidSettings)
		}
	}

	if settings.XcconfigPath == "" {
		settings.XcconfigPath = DefaultXcconfigPath()
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidSettings, settings.LogLevel)
	}

	return nil
}

// ResolveXcconfigPath returns XcconfigPath, joined with ProjectPath when relative.
func (c *Config) ResolveXcconfigPath() string {
	if filepath.IsAbs(c.XcconfigPath) {
		return c.XcconfigPath
	}

	return filepath.Join(c.ProjectPath, c.XcconfigPath)
}

// ResourcesPath returns the absolute-or-project-relative resources folder.
func (c *Config) ResourcesPath() string {
	return filepath.Join(c.ProjectPath, c.ResourcesDir)
}

// SourcePaths returns the resource source folders under ResourcesPath.
func (c *Config) SourcePaths() []string {
	paths := make([]string, 0, len(c.SourceDirs))
	for _, dir := range c.SourceDirs {
		paths = append(paths, filepath.Join(c.ResourcesPath(), dir))
	}

	return paths
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks defaults and rejected values.
func TestValidate(t *testing.T) {
	t.Parallel()

	settings := new(Config)
	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultResourcesDir, settings.ResourcesDir)
	require.Equal(t, []string{"img", "fonts"}, settings.SourceDirs)
	require.Equal(t, DefaultXcconfigPath(), settings.XcconfigPath)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)

	require.ErrorIs(t, Validate(&Config{LogLevel: "loud"}), ErrInvalidSettings)
	require.ErrorIs(t, Validate(&Config{SourceDirs: []string{"img", " "}}), ErrInvalidSettings)
	require.ErrorIs(t, Validate(&Config{ResourcesDir: "/abs/resources"}), ErrInvalidSettings)
	require.Error(t, Validate(nil))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ProjectPath:  "/src/iPlug2/Examples/MyPlug",
		XcconfigPath: "/src/iPlug2/common-mac.xcconfig",
		SourceDirs:   []string{"img", "fonts", "svg"},
		LogLevel:     "debug",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path, false)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadOptional returns defaults only when the file may be absent.
func TestLoadOptional(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, DefaultResourcesDir, cfg.ResourcesDir)

	_, err = Load(path, false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadMalformed rejects invalid YAML.
func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_dirs: [img\n"), 0o600))

	_, err := Load(path, true)
	require.ErrorContains(t, err, "unmarshal settings")
}

// TestPaths resolves project-relative locations.
func TestPaths(t *testing.T) {
	t.Parallel()

	cfg := &Config{ProjectPath: "/p"}
	require.NoError(t, Validate(cfg))

	require.Equal(t, filepath.Join("/p", "..", "..", "common-mac.xcconfig"), cfg.ResolveXcconfigPath())
	require.Equal(t, filepath.Join("/p", "resources"), cfg.ResourcesPath())
	require.Equal(t, []string{
		filepath.Join("/p", "resources", "img"),
		filepath.Join("/p", "resources", "fonts"),
	}, cfg.SourcePaths())

	cfg.XcconfigPath = "/abs/common-mac.xcconfig"
	require.Equal(t, "/abs/common-mac.xcconfig", cfg.ResolveXcconfigPath())
}

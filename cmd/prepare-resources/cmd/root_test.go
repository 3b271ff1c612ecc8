package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/plug-resources/internal/project"
)

// TestRootCommand_ExplicitConfigMustExist rejects a --config path that does not exist.
//
//nolint:paralleltest // Shares the package-level root command.
func TestRootCommand_ExplicitConfigMustExist(t *testing.T) {
	dir := t.TempDir()

	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.yaml"),
		"--project", dir,
	})

	err := rootCmd.Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRootCommand_ConfigError surfaces a missing config.h.
//
//nolint:paralleltest // Shares the package-level root command.
func TestRootCommand_ConfigError(t *testing.T) {
	dir := t.TempDir()

	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{
		"--config", filepath.Join(dir, "settings.yaml"),
		"--project", dir,
		"--xcconfig", filepath.Join(dir, "common-mac.xcconfig"),
		"--log-level", "error",
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("log_level: info\n"), 0o600))

	err := rootCmd.Execute()
	require.ErrorIs(t, err, project.ErrConfig)
}

// TestRootCommand_RejectsArguments keeps the command argument-free.
//
//nolint:paralleltest // Shares the package-level root command.
func TestRootCommand_RejectsArguments(t *testing.T) {
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"unexpected"})

	require.Error(t, rootCmd.Execute())
}

package resources

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/plug-resources/internal/domain/bundle"
)

// TestResolveDestination_Shared ignores build variables when resources are shared.
func TestResolveDestination_Shared(t *testing.T) {
	t.Parallel()

	cfg := bundle.BuildConfig{BundleName: "MyPlug", SharedResources: true}

	for _, vars := range []map[string]string{
		nil,
		{EnvTargetBuildDir: "/build", EnvUnlocalizedResourceDir: "MyPlug.vst3/Contents/Resources"},
	} {
		dst, err := ResolveDestination(cfg, StaticEnvironment{Vars: vars, Home: "/Users/dev"})
		require.NoError(t, err)
		require.Equal(t, filepath.Join("/Users/dev", "Music", "MyPlug", "Resources"), dst)
	}

	_, err := ResolveDestination(cfg, StaticEnvironment{})
	require.ErrorIs(t, err, ErrMissingEnvironment)
}

// TestResolveDestination_Build joins the two build-tool variables.
func TestResolveDestination_Build(t *testing.T) {
	t.Parallel()

	env := StaticEnvironment{Vars: map[string]string{
		EnvTargetBuildDir:         "/build/Release",
		EnvUnlocalizedResourceDir: "MyPlug.vst3/Contents/Resources",
	}}

	dst, err := ResolveDestination(bundle.BuildConfig{BundleName: "MyPlug"}, env)
	require.NoError(t, err)
	require.Equal(t, "/build/Release/MyPlug.vst3/Contents/Resources", dst)
}

// TestResolveDestination_MissingVariables requires both variables to be non-empty.
func TestResolveDestination_MissingVariables(t *testing.T) {
	t.Parallel()

	cases := map[string]map[string]string{
		EnvTargetBuildDir:         {EnvUnlocalizedResourceDir: "Res"},
		EnvUnlocalizedResourceDir: {EnvTargetBuildDir: "/build"},
	}
	for missing, vars := range cases {
		_, err := ResolveDestination(bundle.BuildConfig{}, StaticEnvironment{Vars: vars})
		require.ErrorIs(t, err, ErrMissingEnvironment)
		require.ErrorContains(t, err, missing)
	}

	_, err := ResolveDestination(bundle.BuildConfig{}, StaticEnvironment{Vars: map[string]string{
		EnvTargetBuildDir:         "",
		EnvUnlocalizedResourceDir: "Res",
	}})
	require.ErrorIs(t, err, ErrMissingEnvironment)
}

// TestOSEnvironment reads variables from the process.
func TestOSEnvironment(t *testing.T) {
	t.Setenv(EnvTargetBuildDir, "/tmp/build")

	value, ok := OSEnvironment{}.Lookup(EnvTargetBuildDir)
	require.True(t, ok)
	require.Equal(t, "/tmp/build", value)
}

package resources

import (
	"fmt"
	"path/filepath"

	"github.com/oshokin/plug-resources/internal/domain/bundle"
)

// ResolveDestination returns the folder resources are copied to.
//
// Shared resources go to <home>/Music/<bundle>/Resources. Otherwise the
// folder is $TARGET_BUILD_DIR/$UNLOCALIZED_RESOURCES_FOLDER_PATH and both
// variables must be set.
func ResolveDestination(cfg bundle.BuildConfig, env Environment) (string, error) {
	if cfg.SharedResources {
		home, err := env.HomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}

		return cfg.SharedResourcesPath(home), nil
	}

	buildDir, err := lookupRequired(env, EnvTargetBuildDir)
	if err != nil {
		return "", err
	}

	resourcesDir, err := lookupRequired(env, EnvUnlocalizedResourceDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(buildDir, resourcesDir), nil
}

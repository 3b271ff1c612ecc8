package resources

import (
	"errors"
	"fmt"
	"os"
)

// Build-tool variables read when resources are not shared.
const (
	EnvTargetBuildDir         = "TARGET_BUILD_DIR"
	EnvUnlocalizedResourceDir = "UNLOCALIZED_RESOURCES_FOLDER_PATH"
)

// ErrMissingEnvironment is returned when a required variable is unset or empty.
var ErrMissingEnvironment = errors.New("missing environment variable")

// Environment provides process environment values.
type Environment interface {
	// Lookup returns the value of a variable and whether it is set.
	Lookup(key string) (string, bool)
	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)
}

// OSEnvironment reads the real process environment.
type OSEnvironment struct{}

// Lookup implements Environment.
func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// HomeDir implements Environment.
func (OSEnvironment) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// StaticEnvironment serves fixed values.
type StaticEnvironment struct {
	Vars map[string]string
	Home string
}

// Lookup implements Environment.
func (e StaticEnvironment) Lookup(key string) (string, bool) {
	value, ok := e.Vars[key]

	return value, ok
}

// HomeDir implements Environment.
func (e StaticEnvironment) HomeDir() (string, error) {
	if e.Home == "" {
		return "", fmt.Errorf("%w: HOME", ErrMissingEnvironment)
	}

	return e.Home, nil
}

// lookupRequired returns the non-empty value of key.
func lookupRequired(env Environment, key string) (string, error) {
	value, ok := env.Lookup(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingEnvironment, key)
	}

	return value, nil
}

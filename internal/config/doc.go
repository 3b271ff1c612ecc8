// Package config defines the settings of prepare-resources and provides
// helpers to load, validate and save them in YAML format.
//
// Settings locate the project directory, the shared xcconfig and the
// resource folders; command-line flags override them.
package config

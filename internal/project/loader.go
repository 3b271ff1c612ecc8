package project

import (
	"github.com/oshokin/plug-resources/internal/domain/bundle"
)

// Loader reads the build settings of one project directory.
type Loader struct {
	// ProjectPath is the directory holding config.h.
	ProjectPath string
	// XcconfigPath is the path to common-mac.xcconfig.
	XcconfigPath string
}

// LoadBuildConfig parses config.h.
func (l *Loader) LoadBuildConfig() (bundle.BuildConfig, error) {
	return ParseConfig(l.ProjectPath)
}

// LoadDeploymentSettings parses the xcconfig.
func (l *Loader) LoadDeploymentSettings() (bundle.DeploymentSettings, error) {
	return ParseXcconfig(l.XcconfigPath)
}

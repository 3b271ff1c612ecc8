package bundle

import "path/filepath"

// BuildConfig carries the project build settings for one run.
// It is passed by value and never mutated after loading.
type BuildConfig struct {
	// PlugName is the display name of the plugin (PLUG_NAME).
	PlugName string
	// BundleName names the bundle and its executable (BUNDLE_NAME).
	BundleName string
	// Manufacturer is the bundle manufacturer segment (BUNDLE_MFR).
	Manufacturer string
	// Domain is the reverse-DNS prefix of bundle identifiers (BUNDLE_DOMAIN).
	Domain string
	// Copyright is appended to the info string (PLUG_COPYRIGHT_STR).
	Copyright string
	// FullVersion is the dotted version derived from PLUG_VERSION_HEX.
	FullVersion string
	// UniqueID is the four-character plugin code (PLUG_UNIQUE_ID).
	UniqueID string
	// ManufacturerID is the four-character manufacturer code (PLUG_MFR_ID).
	ManufacturerID string
	// SharedResources installs resources into the user's Music folder
	// instead of the bundle (PLUG_SHARED_RESOURCES).
	SharedResources bool
}

// DeploymentSettings holds values parsed from the shared xcconfig.
type DeploymentSettings struct {
	// MinimumSystemVersion is the macOS deployment target (DEPLOYMENT_TARGET).
	MinimumSystemVersion string
	// values keeps every assignment from the xcconfig.
	values map[string]string
}

// NewDeploymentSettings builds settings from a parsed xcconfig mapping.
// The map is copied.
func NewDeploymentSettings(values map[string]string) DeploymentSettings {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}

	return DeploymentSettings{
		MinimumSystemVersion: copied[DeploymentTargetKey],
		values:               copied,
	}
}

// Value returns the raw xcconfig value for key.
func (d DeploymentSettings) Value(key string) (string, bool) {
	value, ok := d.values[key]

	return value, ok
}

// DeploymentTargetKey is the xcconfig setting holding the minimum macOS version.
const DeploymentTargetKey = "DEPLOYMENT_TARGET"

// SharedResourcesPath returns <home>/Music/<bundle>/Resources.
func (c BuildConfig) SharedResourcesPath(home string) string {
	return filepath.Join(home, "Music", c.BundleName, "Resources")
}

// InfoString renders the CFBundleGetInfoString value.
func (c BuildConfig) InfoString() string {
	return c.BundleName + " v" + c.FullVersion + " " + c.Copyright
}

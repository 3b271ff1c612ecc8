package bundle

import "fmt"

// Format is a plugin packaging format with its own Info.plist.
type Format int

const (
	// VST3 is the VST3 bundle format.
	VST3 Format = iota + 1
	// VST2 is the VST 2.4 bundle format.
	VST2
)

// Formats lists the formats whose metadata is rewritten, in processing order.
func Formats() []Format {
	return []Format{VST3, VST2}
}

// Name returns the format name used in Info.plist file names.
func (f Format) Name() string {
	switch f {
	case VST3:
		return "VST3"
	case VST2:
		return "VST2"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return f.Name()
}

// Tag returns the bundle identifier segment for the format.
func (f Format) Tag() string {
	switch f {
	case VST3:
		return "vst3"
	case VST2:
		return "vst"
	default:
		return ""
	}
}

// InfoPlistName returns the Info.plist file name for the bundle, e.g. MyPlug-VST3-Info.plist.
func (f Format) InfoPlistName(bundleName string) string {
	return bundleName + "-" + f.Name() + "-Info.plist"
}

// BundleIdentifier returns <domain>.<manufacturer>.<tag>.<bundle>.
func (f Format) BundleIdentifier(cfg BuildConfig) string {
	return cfg.Domain + "." + cfg.Manufacturer + "." + f.Tag() + "." + cfg.BundleName
}

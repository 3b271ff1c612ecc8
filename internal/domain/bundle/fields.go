package bundle

// Info.plist keys rewritten on every run.
const (
	KeyExecutable           = "CFBundleExecutable"
	KeyGetInfoString        = "CFBundleGetInfoString"
	KeyIdentifier           = "CFBundleIdentifier"
	KeyName                 = "CFBundleName"
	KeyVersion              = "CFBundleVersion"
	KeyShortVersionString   = "CFBundleShortVersionString"
	KeyMinimumSystemVersion = "LSMinimumSystemVersion"
	KeyPackageType          = "CFBundlePackageType"
	KeySignature            = "CFBundleSignature"
	KeyResourcesFileMapped  = "CSResourcesFileMapped"
)

// PackageTypeBundle is the CFBundlePackageType of plugin bundles.
const PackageTypeBundle = "BNDL"

// Field is one Info.plist key and the value it must hold.
// Value is either a string or a bool.
type Field struct {
	Key   string
	Value any
}

// InfoFields returns the Info.plist fields for a format in a stable order.
func InfoFields(cfg BuildConfig, deploy DeploymentSettings, format Format) []Field {
	return []Field{
		{Key: KeyExecutable, Value: cfg.BundleName},
		{Key: KeyGetInfoString, Value: cfg.InfoString()},
		{Key: KeyIdentifier, Value: format.BundleIdentifier(cfg)},
		{Key: KeyName, Value: cfg.BundleName},
		{Key: KeyVersion, Value: cfg.FullVersion},
		{Key: KeyShortVersionString, Value: cfg.FullVersion},
		{Key: KeyMinimumSystemVersion, Value: deploy.MinimumSystemVersion},
		{Key: KeyPackageType, Value: PackageTypeBundle},
		{Key: KeySignature, Value: cfg.UniqueID},
		{Key: KeyResourcesFileMapped, Value: true},
	}
}

package bundle

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleConfig() BuildConfig {
	return BuildConfig{
		PlugName:     "MyPlug",
		BundleName:   "MyPlug",
		Manufacturer: "Acme",
		Domain:       "com.acme",
		Copyright:    "(c) 2024 Acme",
		FullVersion:  "1.2.3",
		UniqueID:     "Mypl",
	}
}

// TestInfoFields checks every rewritten field for both formats.
func TestInfoFields(t *testing.T) {
	t.Parallel()

	deploy := NewDeploymentSettings(map[string]string{DeploymentTargetKey: "10.13"})

	cases := map[Format]string{
		VST3: "com.acme.Acme.vst3.MyPlug",
		VST2: "com.acme.Acme.vst.MyPlug",
	}
	for format, identifier := range cases {
		got := InfoFields(sampleConfig(), deploy, format)
		require.Equal(t, []Field{
			{Key: KeyExecutable, Value: "MyPlug"},
			{Key: KeyGetInfoString, Value: "MyPlug v1.2.3 (c) 2024 Acme"},
			{Key: KeyIdentifier, Value: identifier},
			{Key: KeyName, Value: "MyPlug"},
			{Key: KeyVersion, Value: "1.2.3"},
			{Key: KeyShortVersionString, Value: "1.2.3"},
			{Key: KeyMinimumSystemVersion, Value: "10.13"},
			{Key: KeyPackageType, Value: "BNDL"},
			{Key: KeySignature, Value: "Mypl"},
			{Key: KeyResourcesFileMapped, Value: true},
		}, got, format.Name())
	}
}

// TestFormatNames verifies file names and tags per format.
func TestFormatNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Format{VST3, VST2}, Formats())
	require.Equal(t, "MyPlug-VST3-Info.plist", VST3.InfoPlistName("MyPlug"))
	require.Equal(t, "MyPlug-VST2-Info.plist", VST2.InfoPlistName("MyPlug"))
	require.Equal(t, "vst3", VST3.Tag())
	require.Equal(t, "vst", VST2.Tag())
	require.Equal(t, "Format(7)", Format(7).String())
}

// TestSharedResourcesPath verifies the user-scoped destination layout.
func TestSharedResourcesPath(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		filepath.Join("/Users/dev", "Music", "MyPlug", "Resources"),
		sampleConfig().SharedResourcesPath("/Users/dev"))
}

// TestDeploymentSettingsCopiesInput ensures later changes to the source map are not observed.
func TestDeploymentSettingsCopiesInput(t *testing.T) {
	t.Parallel()

	values := map[string]string{DeploymentTargetKey: "10.13", "SDKROOT": "macosx"}
	deploy := NewDeploymentSettings(values)
	values["SDKROOT"] = "iphoneos"

	sdk, ok := deploy.Value("SDKROOT")
	require.True(t, ok)
	require.Equal(t, "macosx", sdk)
	require.Equal(t, "10.13", deploy.MinimumSystemVersion)
}

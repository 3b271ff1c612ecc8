package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/plug-resources/internal/config"
	"github.com/oshokin/plug-resources/internal/service/preparer"
	"github.com/oshokin/plug-resources/internal/version"
)

var (
	// configPath to the settings YAML file.
	configPath string
	// projectPath overrides the project directory.
	projectPath string
	// xcconfigPath overrides the location of common-mac.xcconfig.
	xcconfigPath string
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd copies plugin resources and rewrites the bundle Info.plist files.
	rootCmd = &cobra.Command{
		Use:   "prepare-resources",
		Short: "Copy plugin resources and update VST3/VST2 Info.plist files",
		Long: `Reads config.h of the plugin project and the shared common-mac.xcconfig,
copies resources/img and resources/fonts to the resources destination and
rewrites <BUNDLE_NAME>-VST3-Info.plist and <BUNDLE_NAME>-VST2-Info.plist.

With PLUG_SHARED_RESOURCES enabled the destination is ~/Music/<BUNDLE_NAME>/Resources.
Otherwise it is $TARGET_BUILD_DIR/$UNLOCALIZED_RESOURCES_FOLDER_PATH, as set by Xcode.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &preparer.Options{
				ConfigPath:    configPath,
				RequireConfig: cmd.Flags().Changed("config"),
				ProjectPath:   projectPath,
				XcconfigPath:  xcconfigPath,
				LogLevel:      logLevel,
			}

			return preparer.Run(ctx, options)
		},
	}
)

// Execute runs the prepare-resources CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to settings file")
	flags.StringVarP(&projectPath, "project", "p", "", "plugin project directory (default: detected from working directory)")
	flags.StringVar(&xcconfigPath, "xcconfig", "", "path to common-mac.xcconfig (default: <project>/../../common-mac.xcconfig)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

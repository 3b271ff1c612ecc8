package preparer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/plug-resources/internal/config"
	"github.com/oshokin/plug-resources/internal/domain/bundle"
	"github.com/oshokin/plug-resources/internal/logger"
	"github.com/oshokin/plug-resources/internal/project"
	"github.com/oshokin/plug-resources/internal/repository/infoplist"
	"github.com/oshokin/plug-resources/internal/resources"
)

// Options contains inputs for the preparer entry point.
type Options struct {
	// ConfigPath is the settings YAML file (defaults to prepare-resources.yaml).
	ConfigPath string
	// RequireConfig makes a missing settings file an error.
	RequireConfig bool
	// ProjectPath overrides the project directory from the settings.
	ProjectPath string
	// XcconfigPath overrides the xcconfig path from the settings.
	XcconfigPath string
	// LogLevel overrides the log level from the settings.
	LogLevel string
	// Environment supplies build-tool variables; nil means the process environment.
	Environment resources.Environment
	// Loader supplies the project build settings; nil means config.h and the xcconfig.
	Loader ProjectLoader
}

// ProjectLoader provides the build settings of the project.
type ProjectLoader interface {
	LoadBuildConfig() (bundle.BuildConfig, error)
	LoadDeploymentSettings() (bundle.DeploymentSettings, error)
}

// Result summarises a completed run.
type Result struct {
	// Destination is the folder resources were copied to.
	Destination string
	// Copy lists copied and skipped resources.
	Copy *resources.Report
	// Documents are the rewritten Info.plist paths, in processing order.
	Documents []string
}

// preparer holds the collaborators of a single run.
// It is unexported; callers use Run.
type preparer struct {
	// settings locate the project folders.
	settings *config.Config
	// loader reads config.h and the xcconfig.
	loader ProjectLoader
	// env resolves the non-shared destination.
	env resources.Environment
	// copier installs resource files.
	copier *resources.Copier
	// documents loads and saves Info.plist files.
	documents infoplist.Repository
}

// Run executes the resource preparation workflow.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "prepare-resources")

	p, err := newPreparer(opts)
	if err != nil {
		return fmt.Errorf("initialize preparer: %w", err)
	}

	if level, ok := logger.ParseLogLevel(p.settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	if _, err = p.Run(ctx); err != nil {
		logger.ErrorKV(ctx, "Resource preparation failed", "error", err)
		return err
	}

	logger.Info(ctx, "Resources prepared successfully")

	return nil
}

// newPreparer loads settings, applies overrides and fills default collaborators.
func newPreparer(opts *Options) (*preparer, error) {
	settings, err := config.Load(opts.ConfigPath, !opts.RequireConfig)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.ProjectPath != "" {
		settings.ProjectPath = opts.ProjectPath
	}

	// A flag value is relative to the working directory, not to the project.
	if opts.XcconfigPath != "" {
		if settings.XcconfigPath, err = filepath.Abs(opts.XcconfigPath); err != nil {
			return nil, fmt.Errorf("resolve xcconfig path: %w", err)
		}
	}

	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	if err = config.Validate(settings); err != nil {
		return nil, err
	}

	if settings.ProjectPath == "" {
		if settings.ProjectPath, err = DetectProjectPath(); err != nil {
			return nil, err
		}
	}

	p := &preparer{
		settings:  settings,
		loader:    opts.Loader,
		env:       opts.Environment,
		copier:    resources.NewCopier(),
		documents: infoplist.NewFileRepository(),
	}

	if p.loader == nil {
		p.loader = &project.Loader{
			ProjectPath:  settings.ProjectPath,
			XcconfigPath: settings.ResolveXcconfigPath(),
		}
	}

	if p.env == nil {
		p.env = resources.OSEnvironment{}
	}

	return p, nil
}

// DetectProjectPath returns the working directory, or its parent when only
// the parent holds config.h.
func DetectProjectPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if hasConfig(wd) {
		return wd, nil
	}

	if parent := filepath.Dir(wd); hasConfig(parent) {
		return parent, nil
	}

	return wd, nil
}

func hasConfig(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, project.ConfigFilename))

	return !errors.Is(err, os.ErrNotExist)
}

// Run loads the build settings, copies resources and rewrites the Info.plist files.
func (p *preparer) Run(ctx context.Context) (*Result, error) {
	logger.InfoKV(ctx, "Loading project configuration", "project", p.settings.ProjectPath)

	cfg, err := p.loader.LoadBuildConfig()
	if err != nil {
		return nil, fmt.Errorf("load build config: %w", err)
	}

	deploy, err := p.loader.LoadDeploymentSettings()
	if err != nil {
		return nil, fmt.Errorf("load deployment settings: %w", err)
	}

	ctx = logger.WithKV(ctx, "bundle", cfg.BundleName)

	dst, err := resources.ResolveDestination(cfg, p.env)
	if err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	report, err := p.copier.Copy(ctx, p.settings.SourcePaths(), dst)
	if err != nil {
		return nil, fmt.Errorf("copy resources: %w", err)
	}

	result := &Result{
		Destination: dst,
		Copy:        report,
	}

	logger.Info(ctx, "Processing Info.plist files")

	for _, format := range bundle.Formats() {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		path, updateErr := p.updateInfoPlist(ctx, cfg, deploy, format)
		if updateErr != nil {
			return result, fmt.Errorf("update %s Info.plist: %w", format, updateErr)
		}

		result.Documents = append(result.Documents, path)
	}

	return result, nil
}

// updateInfoPlist rewrites the bundle fields of one format's Info.plist.
func (p *preparer) updateInfoPlist(
	ctx context.Context,
	cfg bundle.BuildConfig,
	deploy bundle.DeploymentSettings,
	format bundle.Format,
) (string, error) {
	path := filepath.Join(p.settings.ResourcesPath(), format.InfoPlistName(cfg.BundleName))

	doc, err := p.documents.Load(ctx, path)
	if err != nil {
		return "", err
	}

	doc.Apply(bundle.InfoFields(cfg, deploy, format))

	logger.InfoKV(ctx, "Saving Info.plist", "format", format.Name(), "path", path)

	if err = p.documents.Save(ctx, doc); err != nil {
		return "", err
	}

	return path, nil
}

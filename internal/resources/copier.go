package resources

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	"github.com/oshokin/plug-resources/internal/logger"
)

// DestinationMode is the mode of a created destination folder.
const DestinationMode os.FileMode = 0o755

// ErrFileSystem wraps filesystem failures while installing resources.
var ErrFileSystem = errors.New("filesystem error")

// Report lists what a Copy call did.
type Report struct {
	// Copied holds destination paths of copied files, in copy order.
	Copied []string
	// MissingSources holds source folders that did not exist.
	MissingSources []string
	// SkippedEntries holds source entries that are not regular files.
	SkippedEntries []string
}

// Copier copies the files of resource folders into a destination folder.
type Copier struct {
	options cp.Options
}

// NewCopier returns a Copier that follows symlinks and keeps copied
// files writable so that later runs can overwrite them.
func NewCopier() *Copier {
	return &Copier{
		options: cp.Options{
			OnSymlink: func(string) cp.SymlinkAction {
				return cp.Deep
			},
			PermissionControl: cp.AddPermission(0o200),
			Sync:              true,
		},
	}
}

// Copy ensures dst exists and copies every regular file found directly in
// each source folder into it, overwriting files of the same name. Missing
// source folders are skipped.
func (c *Copier) Copy(ctx context.Context, sources []string, dst string) (*Report, error) {
	logger.Info(ctx, "Copying resources")

	if err := os.MkdirAll(dst, DestinationMode); err != nil {
		return nil, fmt.Errorf("%w: create destination %s: %w", ErrFileSystem, dst, err)
	}

	report := new(Report)

	for _, source := range sources {
		if err := c.copyFolder(ctx, source, dst, report); err != nil {
			return report, err
		}
	}

	logger.InfoKV(ctx, "Resources copied", "files", len(report.Copied), "destination", dst)

	return report, nil
}

func (c *Copier) copyFolder(ctx context.Context, source, dst string, report *Report) error {
	entries, err := os.ReadDir(source)
	if errors.Is(err, os.ErrNotExist) {
		logger.InfoKV(ctx, "Resource folder not found, skipping", "source", source)

		report.MissingSources = append(report.MissingSources, source)

		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrFileSystem, source, err)
	}

	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return err
		}

		src := filepath.Join(source, entry.Name())

		// Stat follows symlinks so linked files are copied like regular ones.
		var info os.FileInfo

		info, err = os.Stat(src)
		if err != nil {
			return fmt.Errorf("%w: stat %s: %w", ErrFileSystem, src, err)
		}

		if !info.Mode().IsRegular() {
			logger.WarnKV(ctx, "Skipping entry that is not a regular file", "source", src)

			report.SkippedEntries = append(report.SkippedEntries, src)

			continue
		}

		target := filepath.Join(dst, entry.Name())

		logger.InfoKV(ctx, "Copying file", "file", entry.Name(), "destination", dst)

		if err = cp.Copy(src, target, c.options); err != nil {
			return fmt.Errorf("%w: copy %s to %s: %w", ErrFileSystem, src, target, err)
		}

		report.Copied = append(report.Copied, target)
	}

	return nil
}

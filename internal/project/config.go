package project

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/oshokin/plug-resources/internal/domain/bundle"
)

// ConfigFilename is the project header holding the plugin defines.
const ConfigFilename = "config.h"

// ErrConfig marks a missing or malformed project configuration.
var ErrConfig = errors.New("project configuration error")

// Define names read from config.h.
const (
	definePlugName        = "PLUG_NAME"
	defineBundleName      = "BUNDLE_NAME"
	defineBundleMfr       = "BUNDLE_MFR"
	defineBundleDomain    = "BUNDLE_DOMAIN"
	defineCopyright       = "PLUG_COPYRIGHT_STR"
	defineUniqueID        = "PLUG_UNIQUE_ID"
	defineMfrID           = "PLUG_MFR_ID"
	defineVersionHex      = "PLUG_VERSION_HEX"
	defineSharedResources = "PLUG_SHARED_RESOURCES"
)

// requiredDefines must be present for the Info.plist fields to be complete.
//
//nolint:gochecknoglobals // Read-only list.
var requiredDefines = []string{
	defineBundleName,
	defineBundleMfr,
	defineBundleDomain,
	defineCopyright,
	defineUniqueID,
	defineVersionHex,
}

// ParseConfig reads <projectPath>/config.h.
func ParseConfig(projectPath string) (bundle.BuildConfig, error) {
	path := filepath.Join(projectPath, ConfigFilename)

	defines, err := readDefines(path)
	if err != nil {
		return bundle.BuildConfig{}, err
	}

	var result *multierror.Error

	for _, name := range requiredDefines {
		if _, ok := defines[name]; !ok {
			result = multierror.Append(result, fmt.Errorf("%s is not defined", name))
		}
	}

	if err = result.ErrorOrNil(); err != nil {
		return bundle.BuildConfig{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	version, err := ParseVersionHex(defines[defineVersionHex])
	if err != nil {
		return bundle.BuildConfig{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	shared, err := parseFlag(defines[defineSharedResources])
	if err != nil {
		return bundle.BuildConfig{}, fmt.Errorf("%w: %s: %s: %w", ErrConfig, path, defineSharedResources, err)
	}

	return bundle.BuildConfig{
		PlugName:        unquote(defines[definePlugName], '"'),
		BundleName:      unquote(defines[defineBundleName], '"'),
		Manufacturer:    unquote(defines[defineBundleMfr], '"'),
		Domain:          unquote(defines[defineBundleDomain], '"'),
		Copyright:       unquote(defines[defineCopyright], '"'),
		FullVersion:     version,
		UniqueID:        unquote(defines[defineUniqueID], '\''),
		ManufacturerID:  unquote(defines[defineMfrID], '\''),
		SharedResources: shared,
	}, nil
}

// ParseVersionHex converts a 0xMMMMmmbb version into "major.minor.bugfix".
func ParseVersionHex(value string) (string, error) {
	value = strings.TrimSpace(value)

	raw := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q: %w", defineVersionHex, value, err)
	}

	return fmt.Sprintf("%d.%d.%d", v>>16, (v>>8)&0xFF, v&0xFF), nil
}

// readDefines collects `#define NAME value` lines. Later defines win.
func readDefines(path string) (map[string]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrConfig, path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	defines := make(map[string]string)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(stripLineComment(scanner.Text()))

		rest, ok := strings.CutPrefix(line, "#define")
		if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}

		rest = strings.TrimLeft(rest, " \t")

		// Values may contain spaces, e.g. "(c) 2024 Acme".
		sep := strings.IndexAny(rest, " \t")
		if sep < 0 {
			continue
		}

		defines[rest[:sep]] = strings.TrimSpace(rest[sep+1:])
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
	}

	return defines, nil
}

// stripLineComment drops a trailing // comment that is not inside a string literal.
func stripLineComment(line string) string {
	inString := false

	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && inString:
			i++
		case line[i] == '"':
			inString = !inString
		case !inString && strings.HasPrefix(line[i:], "//"):
			return line[:i]
		}
	}

	return line
}

func unquote(value string, quote byte) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == quote && value[len(value)-1] == quote {
		return value[1 : len(value)-1]
	}

	return value
}

// parseFlag treats an absent define as false and any non-zero integer as true.
func parseFlag(value string) (bool, error) {
	if value == "" {
		return false, nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(value), 0, 64)
	if err != nil {
		return false, err
	}

	return n != 0, nil
}

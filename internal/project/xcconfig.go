package project

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/oshokin/plug-resources/internal/domain/bundle"
)

// XcconfigFilename is the shared mac build settings file under the iPlug2 root.
const XcconfigFilename = "common-mac.xcconfig"

// variableRef matches $(NAME) and ${NAME} references.
var variableRef = regexp.MustCompile(`\$[({]([A-Za-z_][A-Za-z0-9_]*)[)}]`)

// ParseXcconfig reads an xcconfig file and returns its settings.
// DEPLOYMENT_TARGET must be set.
func ParseXcconfig(path string) (bundle.DeploymentSettings, error) {
	values := make(map[string]string)

	if err := readXcconfig(filepath.Clean(path), values, make(map[string]struct{}), true); err != nil {
		return bundle.DeploymentSettings{}, err
	}

	settings := bundle.NewDeploymentSettings(values)
	if settings.MinimumSystemVersion == "" {
		return bundle.DeploymentSettings{},
			fmt.Errorf("%w: %s: %s is not set", ErrConfig, path, bundle.DeploymentTargetKey)
	}

	return settings, nil
}

// readXcconfig merges the assignments of path into values.
// Includes are resolved relative to the including file; a missing include is
// skipped unless required.
func readXcconfig(path string, values map[string]string, visited map[string]struct{}, required bool) error {
	if _, seen := visited[path]; seen {
		return nil
	}

	visited[path] = struct{}{}

	file, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("%w: open %s: %w", ErrConfig, path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(stripLineComment(scanner.Text()))
		if line == "" {
			continue
		}

		if include, ok := parseInclude(line); ok {
			if !filepath.IsAbs(include) {
				include = filepath.Join(filepath.Dir(path), include)
			}

			if err = readXcconfig(filepath.Clean(include), values, visited, false); err != nil {
				return err
			}

			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("%w: %s:%d: expected KEY = value", ErrConfig, path, lineNo)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("%w: %s:%d: empty setting name", ErrConfig, path, lineNo)
		}

		values[key] = expand(strings.TrimSuffix(strings.TrimSpace(value), ";"), values)
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
	}

	return nil
}

// parseInclude recognises #include "file" and #include? "file".
func parseInclude(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "#include")
	if !ok {
		return "", false
	}

	rest = strings.TrimSpace(strings.TrimPrefix(rest, "?"))

	return unquote(rest, '"'), true
}

// expand substitutes references to settings defined earlier. Unknown
// references such as $(inherited) stay as written.
func expand(value string, values map[string]string) string {
	return variableRef.ReplaceAllStringFunc(value, func(ref string) string {
		name := variableRef.FindStringSubmatch(ref)[1]
		if resolved, ok := values[name]; ok {
			return resolved
		}

		return ref
	})
}

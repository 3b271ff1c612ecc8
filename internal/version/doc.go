// Package version exposes build metadata for prepare-resources.
//
// Version, Commit and BuildTime are injected with -ldflags "-X" at build
// time and keep local-build defaults otherwise.
package version

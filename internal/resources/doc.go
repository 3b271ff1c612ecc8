// Package resources installs plugin resource files.
//
// ResolveDestination picks the shared per-user folder or the build-tool
// output folder, and Copier copies every file of the source folders there.
package resources

// Package bundle holds the plugin bundle domain model: the build settings read
// from the project, the packaging formats, and the Info.plist fields derived
// from them.
package bundle

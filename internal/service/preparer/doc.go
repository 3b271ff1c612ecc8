// Package preparer runs the resource preparation pipeline of a plugin build.
//
// It loads the project build settings once, copies the image and font
// resources to the destination folder, and rewrites the VST3 and VST2
// Info.plist files with values derived from the settings.
package preparer

// Package project reads the build settings of an iPlug2 project.
//
// ParseConfig extracts the #define values of config.h into a
// bundle.BuildConfig. ParseXcconfig reads KEY = value assignments from an
// xcconfig file, following #include directives, into bundle.DeploymentSettings.
package project

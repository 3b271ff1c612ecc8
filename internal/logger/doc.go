// Package logger wraps zap with a process-wide sugared console logger and
// context helpers (ToContext/FromContext/WithName/WithKV).
//
// Stages of the resource preparation pipeline take a context and pull the
// logger out of it, so a named, key-enriched logger follows the run.
package logger

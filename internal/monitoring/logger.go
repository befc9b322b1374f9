// Package monitoring carries the shared diagnostic logger for the ir
// tools.
package monitoring

import "log"

// Logf is the package-level diagnostic logger, log.Printf by default.
// Tools replace it via SetLogger to redirect or mute diagnostics so
// stdout stays machine-readable.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

package logging

var defaultLogger = NewLogrusAdapter("info", "text")

// GetLogger returns the package default logger. Packages use this as their
// initial logger until a configured one is injected.
func GetLogger() Logger {
	return defaultLogger
}

package logging

import "os"

// logger is a global reference to a shared Logger (created/initialized with the
// compiler, but separated for general usage)
var logger = newLogger(LogLevelVerbose)

// exit ends the process after a fatal error
var exit = os.Exit

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	logger = newLogger(ParseLogLevel(loglevelname))
}

// ParseLogLevel converts a log level name into one of the enumerated log
// levels.  Unknown names (including the empty string) select verbose.
func ParseLogLevel(loglevelname string) int {
	switch loglevelname {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarning
	default:
		return LogLevelVerbose
	}
}

// Reset clears the error and warning counts of the global logger without
// changing its log level.  Watch mode calls this between rebuilds.
func Reset() {
	logger.m.Lock()
	defer logger.m.Unlock()

	logger.errorCount = 0
	logger.warningCount = 0
	logger.warnings = nil
}

// ShouldProceed indicates whether or not the log module has encountered an errors.
// This is useful for sections of the compiler where multiple items are processed
// concurrently and having an error accumulator would be practical
func ShouldProceed() bool {
	logger.m.Lock()
	defer logger.m.Unlock()

	return logger.errorCount == 0
}

// Counts returns the number of errors and warnings logged so far
func Counts() (errors, warnings int) {
	logger.m.Lock()
	defer logger.m.Unlock()

	return logger.errorCount, logger.warningCount
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileError logs a compilation error (a construct that could not be lowered)
func LogCompileError(lctx *LogContext, message string, pos *TextPosition) {
	logger.handleMsg(&CompileMessage{
		Message:  message,
		Position: pos,
		Context:  lctx,
		IsError:  true,
	})
}

// LogCompileWarning logs a compilation warning
func LogCompileWarning(lctx *LogContext, message string, pos *TextPosition) {
	logger.handleMsg(&CompileMessage{
		Message:  message,
		Position: pos,
		Context:  lctx,
		IsError:  false,
	})
}

// LogConfigError logs an error related to project or compiler configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogBuildWarning logs a warning in the build process
func LogBuildWarning(kind, warning string) {
	logger.handleMsg(&BuildWarning{Kind: kind, Message: warning})
}

// LogFatal logs a fatal compilation error that was not expected: ie. the
// compiler did something it wasn't supposed to.  It exits the program.
func LogFatal(message string) {
	logger.m.Lock()
	displayEndPhase(false)
	displayFatalError(message)
	logger.m.Unlock()

	exit(1)
}

// -----------------------------------------------------------------------------

// LogCompileHeader displays the version and selected profile before a build
func LogCompileHeader(profile string) {
	if logger.LogLevel == LogLevelVerbose {
		displayCompileHeader(profile)
	}
}

// LogBeginPhase starts the spinner for a new build phase
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		logger.m.Lock()
		defer logger.m.Unlock()

		displayBeginPhase(phase)
	}
}

// LogEndPhase stops the spinner of the current build phase
func LogEndPhase(success bool) {
	logger.m.Lock()
	defer logger.m.Unlock()

	displayEndPhase(success)
}

// LogCompilationFinished flushes all buffered warnings and displays the
// closing message of a build
func LogCompilationFinished() {
	logger.flushWarnings()

	if logger.LogLevel > LogLevelSilent {
		errorCount, warningCount := Counts()
		displayCompilationFinished(errorCount == 0, errorCount, warningCount)
	}
}

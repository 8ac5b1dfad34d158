package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// compiler as necessary
type Logger struct {
	errorCount   int // Total encountered errors
	warningCount int // Total encountered warnings
	LogLevel     int

	// warnings is a list of all warnings to be logged at the end of compilation
	warnings []LogMessage

	// m is the mutex used to synchonize the printing of error messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing compilation notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, version and progress summary, closing message (DEFAULT)
)

// LogMessage is a message that can be displayed by the logger
type LogMessage interface {
	display()
	isError() bool
}

// CompileMessage is an error or warning attached to a piece of C++ source
type CompileMessage struct {
	Message  string
	Position *TextPosition
	Context  *LogContext
	IsError  bool
}

func (cm *CompileMessage) isError() bool {
	return cm.IsError
}

// ConfigError is an error in the project file or command line configuration
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool {
	return true
}

// BuildWarning is a warning produced by the build process itself (ie. not
// attached to any C++ source)
type BuildWarning struct {
	Kind    string
	Message string
}

func (bw *BuildWarning) isError() bool {
	return false
}

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts to logger to process a message -- this message could be
// coming in concurrently and so we need to make sure we are not printing multiple
// things at the same time so we there is a mutex in place for this function
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warningCount++
		l.warnings = append(l.warnings, lm)
	}
}

// flushWarnings displays all buffered warnings and clears the buffer
func (l *Logger) flushWarnings() {
	l.m.Lock()
	defer l.m.Unlock()

	if l.LogLevel >= LogLevelWarning {
		for _, warning := range l.warnings {
			warning.display()
		}
	}

	l.warnings = nil
}

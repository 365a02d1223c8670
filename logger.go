package typedmap

// Logger receives diagnostics from a Registry. The registry only reports at
// debug level, once per newly interned label; no operation in this package can
// fail, so there is nothing to warn about. The other levels are there so the
// same logger can be shared with the host application.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DefaultLogger discards everything. It is what a Registry uses unless
// WithLogger says otherwise.
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(format string, args ...interface{}) {}
func (l *DefaultLogger) Info(format string, args ...interface{})  {}
func (l *DefaultLogger) Warn(format string, args ...interface{})  {}
func (l *DefaultLogger) Error(format string, args ...interface{}) {}

// NewDefaultLogger returns a DefaultLogger.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

package pathkit

// Logger provides a pluggable logging interface for probe and walk operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Verbose(string, ...interface{}) {}
func (discardLogger) Info(string, ...interface{})    {}
func (discardLogger) Error(string, ...interface{})   {}

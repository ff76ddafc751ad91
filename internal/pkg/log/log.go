package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

var (
	mu     sync.Mutex
	output io.Writer = os.Stdout
	debug  bool
)

// SetOutput redirects log output. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetDebug toggles Debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID retrieves request ID from context
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func write(label *color.Color, level string, requestID string, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		msg = fmt.Sprintf("[req_id=%s] %s", requestID, msg)
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(output, "%s %s\n", label.Sprint("["+level+"]"), msg)
}

var (
	infoLabel  = color.New(color.FgWhite, color.BgGreen)
	warnLabel  = color.New(color.FgWhite, color.BgYellow)
	errorLabel = color.New(color.FgRed)
	debugLabel = color.New(color.FgCyan)
)

// Info log information
func Info(format string, a ...interface{}) {
	write(infoLabel, "INFO", "", format, a...)
}

// InfoWithContext logs information with the request ID when the context carries one
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write(infoLabel, "INFO", RequestID(ctx), format, a...)
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write(warnLabel, "WARN", "", format, a...)
}

// WarnWithContext logs warning with the request ID when the context carries one
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write(warnLabel, "WARN", RequestID(ctx), format, a...)
}

// Error log error
func Error(format string, a ...interface{}) {
	write(errorLabel, "ERROR", "", format, a...)
}

// ErrorWithContext logs error with the request ID when the context carries one
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write(errorLabel, "ERROR", RequestID(ctx), format, a...)
}

// Debug logs only when debug output is enabled.
func Debug(format string, a ...interface{}) {
	mu.Lock()
	enabled := debug
	mu.Unlock()
	if enabled {
		write(debugLabel, "DEBUG", "", format, a...)
	}
}

// Fatalf logs an error and exits.
func Fatalf(format string, a ...interface{}) {
	write(errorLabel, "FATAL", "", format, a...)
	os.Exit(1)
}

// InfoStruct dumps values with spew at debug level.
func InfoStruct(a ...interface{}) {
	Debug("%s", spew.Sdump(a...))
}

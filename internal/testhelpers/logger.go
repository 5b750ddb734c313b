// Package testhelpers holds helpers shared by the end-to-end suite.
package testhelpers

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ANSI color codes used in suite output.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// TestLogger implements log.Logger on top of a writer, usually GinkgoWriter.
type TestLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTestLogger creates a TestLogger writing to w.
func NewTestLogger(w io.Writer) *TestLogger {
	return &TestLogger{w: w}
}

// Logf writes a formatted line.
func (l *TestLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.log(ColorGray, "DEBUG", msg, keysAndValues)
}

func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.log(ColorBlue, "INFO", msg, keysAndValues)
}

func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.log(ColorYellow, "WARN", msg, keysAndValues)
}

func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.log(ColorRed, "ERROR", msg, keysAndValues)
}

// Success logs a suite milestone.
func (l *TestLogger) Success(msg string, keysAndValues ...any) {
	l.log(ColorGreen, "OK", msg, keysAndValues)
}

func (l *TestLogger) log(color, level, msg string, args []any) {
	formatted := msg
	if len(args) > 0 {
		var pairs []string
		for i := 0; i+1 < len(args); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", args[i], args[i+1]))
		}
		formatted = fmt.Sprintf("%s (%s)", msg, strings.Join(pairs, ", "))
	}

	l.Logf("%s[%s] %s%s", color, level, formatted, ColorReset)
}

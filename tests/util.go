package testutil

import (
	"testing"

	"github.com/tnhappykids/appcore/core"
)

// Logger routes app logs to the test log. Fatal does not abort the process.
type Logger struct {
	tb testing.TB
}

var _ core.Logger = (*Logger)(nil)

func NewLogger(tb testing.TB) *Logger {
	return &Logger{tb: tb}
}

func (l *Logger) log(level, msg string, args []interface{}) {
	l.tb.Helper()
	if len(args) > 0 {
		l.tb.Logf("%s: %s %v", level, msg, args)
	} else {
		l.tb.Logf("%s: %s", level, msg)
	}
}

func (l *Logger) Enable(bool) {}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args) }

package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var theLog atomic.Pointer[slog.Logger]

func init() {
	theLog.Store(NewLogger(os.Stderr))
}

// NewLogger returns a text logger on w which drops timestamps and the INFO
// level marker, leaving other levels visible.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

// Logger returns the logger used for debug output.
func Logger() *slog.Logger {
	return theLog.Load()
}

// SetLogger replaces the logger used for debug output.
func SetLogger(l *slog.Logger) {
	theLog.Store(l)
}

// Logf formats a debug message and emits it at debug level. Arguments
// implementing fmt.Stringer are rendered with String, so trees print as
// reports.
func Logf(msg string, args ...any) {
	for i, a := range args {
		if s, ok := a.(fmt.Stringer); ok {
			args[i] = s.String()
		}
	}
	Logger().Debug(fmt.Sprintf(msg, args...))
}

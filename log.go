package table

import (
	"io"
	"log/slog"
	"os"
)

// logLevel controls the log level for table logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// logger is shared by the table model, the document and the host.
var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetLogOutput redirects table logging to w.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger = newLogger(w)
}

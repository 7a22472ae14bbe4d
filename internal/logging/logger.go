package logging

import (
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup initializes the global slog logger with JSON output to stdout.
// Development builds log at debug level.
func Setup(production bool) {
	slog.SetDefault(slog.New(stdoutHandler(production)))
}

// AttachDB adds the system_logs sink to the default logger. Call Stop on
// the returned handler during shutdown to flush what is buffered.
func AttachDB(db *gorm.DB, production bool) *PGHandler {
	pg := NewPGHandler(db)
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(production), pg)))
	return pg
}

func stdoutHandler(production bool) slog.Handler {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

package events

import (
	"io"
	"log/slog"
)

// InitLogger installs a JSON slog handler writing to w as the default logger.
func InitLogger(debug bool, w io.Writer) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

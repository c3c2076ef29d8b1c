package events

import (
	"context"
	"log/slog"
)

// Emit writes a named event through the default slog logger.
// Level is one of "debug", "info", "warn" or "error"; anything else logs at info.
func Emit(level, name, msg string, fields map[string]interface{}) error {
	if err := Validate(name); err != nil {
		return err
	}

	attrs := make([]slog.Attr, 0, len(fields)+1)
	attrs = append(attrs, slog.String("event", name))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	slog.LogAttrs(context.Background(), parseLevel(level), msg, attrs...)
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Init sets up the global logger. JSON output everywhere except development.
func Init(environment string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if environment == "development" {
		log = slog.New(slog.NewTextHandler(os.Stdout, opts))
		return
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error or string as the only argument
// instead of a key/value pair.
func normalize(args []any) []any {
	if len(args) != 1 {
		return args
	}

	switch v := args[0].(type) {
	case error:
		return []any{slog.Any("error", v)}
	case string:
		return []any{slog.String("detail", v)}
	}

	return args
}

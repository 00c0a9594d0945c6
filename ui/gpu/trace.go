package gpu

import (
	"context"
	"log/slog"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// bridgeTraceLog routes raylib's own log lines into logger
func bridgeTraceLog(logger *slog.Logger) {
	rl.SetTraceLogLevel(rl.LogInfo)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		rl.SetTraceLogLevel(rl.LogDebug)
	}
	rl.SetTraceLogCallback(func(level int, msg string) {
		logger.Log(context.Background(), traceLevel(rl.TraceLogLevel(level)), strings.TrimSpace(msg), "source", "raylib")
	})
}

func traceLevel(l rl.TraceLogLevel) slog.Level {
	switch {
	case l <= rl.LogDebug:
		return slog.LevelDebug
	case l == rl.LogInfo:
		return slog.LevelInfo
	case l == rl.LogWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

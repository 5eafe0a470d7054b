// Package app собирает общие для всех команд объекты приложения.
package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/myjapanese/internal/config"
)

// NewLogger создает *slog.Logger по настройкам логирования и
// устанавливает его как логгер по умолчанию.
//
// Формат "json" дает структурированный вывод; любой другой формат —
// текстовый вывод с указанием источника. Уровень: debug, info, warn,
// error (без учета регистра), по умолчанию info. Вывод всегда в stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	textFormat := !strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: textFormat,
	}

	var handler slog.Handler
	if textFormat {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

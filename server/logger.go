package server

import (
	"log/slog"
	"os"
)

var (
	// Logger глобальный структурированный логгер
	Logger *slog.Logger
)

func init() {
	// Структурированный логгер в формате JSON
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))

	// Логирование через slog по умолчанию идет в тот же обработчик
	slog.SetDefault(Logger)
}

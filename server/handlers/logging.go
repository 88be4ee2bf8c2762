package handlers

import (
	"context"
	"log/slog"

	"eoscan/server/middleware"
)

// LogError логирует ошибку с request ID из контекста
func LogError(ctx context.Context, err error, msg string, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", middleware.GetRequestID(ctx))
	slog.Error(msg, attrs...)
}

// LogWarn логирует предупреждение
func LogWarn(ctx context.Context, msg string, attrs ...any) {
	attrs = append(attrs, "request_id", middleware.GetRequestID(ctx))
	slog.Warn(msg, attrs...)
}

// LogInfo логирует информационное сообщение
func LogInfo(ctx context.Context, msg string, attrs ...any) {
	attrs = append(attrs, "request_id", middleware.GetRequestID(ctx))
	slog.Info(msg, attrs...)
}

// LogProcessingComplete логирует завершение обработки инвентаризации
func LogProcessingComplete(ctx context.Context, filename string, total, critical, unknown int, durationMs int64) {
	LogInfo(ctx, "Inventory processing completed",
		"filename", filename,
		"total", total,
		"critical", critical,
		"unknown", unknown,
		"duration_ms", durationMs,
	)
}

package server

import (
	"os"
	"strconv"
)

// Config конфигурация HTTP сервиса. Все параметры читаются из
// переменных окружения, значения по умолчанию подходят для локального
// запуска без настройки.
type Config struct {
	Port string

	// EOSDBPath путь к JSON справочнику EOS
	EOSDBPath string

	// EOSSQLitePath путь к SQLite копии справочника.
	// Если файл существует, справочник загружается из него вместо JSON.
	EOSSQLitePath string

	// MaxUploadSizeMB максимальный размер загружаемого файла инвентаризации
	MaxUploadSizeMB int64

	// PipelineWorkers число воркеров конвейера обработки
	PipelineWorkers int

	// UploadRatePerMinute лимит загрузок в минуту на один клиентский IP
	UploadRatePerMinute int
}

// LoadConfigFromEnv собирает конфигурацию из переменных окружения
func LoadConfigFromEnv() Config {
	return Config{
		Port:                getEnv("SERVER_PORT", "9999"),
		EOSDBPath:           getEnv("EOS_DB_PATH", "data/eos_database.json"),
		EOSSQLitePath:       getEnv("EOS_SQLITE_PATH", ""),
		MaxUploadSizeMB:     getEnvInt64("MAX_UPLOAD_SIZE_MB", 50),
		PipelineWorkers:     getEnvInt("PIPELINE_WORKERS", 4),
		UploadRatePerMinute: getEnvInt("UPLOAD_RATE_PER_MINUTE", 30),
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt возвращает числовое значение переменной окружения
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

// getEnvInt64 возвращает int64 значение переменной окружения
func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

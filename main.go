// @title EOScan API
// @version 1.0
// @description Сервис нормализации инвентаризации ПО и оценки рисков окончания поддержки (EOS).

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:9999
// @BasePath /
// @schemes http

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eoscan/eosdb"
	"eoscan/server"
)

func main() {
	log.Println("Запуск EOScan HTTP Server...")

	// Загружаем конфигурацию
	log.Println("[1/4] Загрузка конфигурации...")
	config := server.LoadConfigFromEnv()
	log.Printf("✓ Конфигурация загружена. Порт: %s", config.Port)

	// Загружаем справочник EOS
	log.Println("[2/4] Загрузка справочника EOS...")
	table, err := loadEOSTable(config)
	if err != nil {
		log.Printf("✗ Ошибка загрузки справочника EOS: %v", err)
		log.Fatalf("Не удалось загрузить справочник EOS (JSON: %s, SQLite: %s)",
			config.EOSDBPath, config.EOSSQLitePath)
	}
	log.Printf("✓ Справочник EOS загружен: %d продуктов", table.Len())

	// Создаем сервер
	log.Println("[3/4] Создание HTTP сервера...")
	srv := server.NewServer(config, table)
	log.Printf("✓ Сервер создан")

	// Запускаем сервер и ждем сигнала остановки
	log.Println("[4/4] Запуск HTTP сервера...")
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("✗ Ошибка HTTP сервера: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("Получен сигнал %v, останавливаем сервер...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("⚠ Ошибка при остановке сервера: %v", err)
		}
		log.Println("✓ Сервер остановлен")
	}
}

// loadEOSTable загружает справочник EOS.
// SQLite копия имеет приоритет: если файл указан и существует,
// справочник читается из него, иначе из JSON файла.
func loadEOSTable(config server.Config) (*eosdb.Table, error) {
	if config.EOSSQLitePath != "" {
		if _, err := os.Stat(config.EOSSQLitePath); err == nil {
			log.Printf("Используется SQLite копия справочника: %s", config.EOSSQLitePath)

			store, err := eosdb.NewStore(config.EOSSQLitePath)
			if err != nil {
				return nil, err
			}
			defer store.Close()

			return store.LoadTable()
		}
	}

	return eosdb.LoadFile(config.EOSDBPath)
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"eoscan/eosdb"
	"eoscan/eosfetch"
)

// Собирает справочник EOS из внешних источников (endoflife.date) и
// сохраняет его в JSON файл, пригодный для загрузки сервером.
func main() {
	outPath := flag.String("out", "data/eos_database.json", "путь к выходному JSON справочнику")
	timeout := flag.Duration("timeout", 15*time.Second, "таймаут одного HTTP запроса")
	rateLimit := flag.Duration("rate-limit", time.Second, "минимальный интервал между запросами")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	fetcher := eosfetch.NewFetcher(logger,
		eosfetch.NewEndOfLifeProvider(*timeout, *rateLimit),
		eosfetch.NewHTMLTableProvider(*timeout, *rateLimit),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Printf("Сбор справочника EOS из внешних источников...")
	table, err := fetcher.FetchTable(ctx, eosfetch.DefaultMappings)
	if err != nil {
		log.Fatalf("✗ Не удалось собрать справочник: %v", err)
	}
	log.Printf("✓ Собрано %d продуктов", table.Len())

	if err := writeTable(table, *outPath); err != nil {
		log.Fatalf("✗ Не удалось сохранить справочник: %v", err)
	}
	log.Printf("✓ Справочник сохранен: %s", *outPath)
}

// writeTable сериализует справочник в JSON формат загрузчика
func writeTable(table *eosdb.Table, path string) error {
	data := make(map[string]map[string]eosdb.Record, table.Len())
	for _, productKey := range table.ProductKeys() {
		versions := make(map[string]eosdb.Record)
		for _, versionKey := range table.VersionKeys(productKey) {
			record, _ := table.Record(productKey, versionKey)
			versions[versionKey] = record
		}
		data[productKey] = versions
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, encoded, 0644)
}

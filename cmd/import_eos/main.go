package main

import (
	"flag"
	"log"

	"eoscan/eosdb"
)

// Импортирует JSON справочник EOS в SQLite копию для операционного
// хранения и инспекции обычными SQL инструментами.
func main() {
	jsonPath := flag.String("json", "data/eos_database.json", "путь к JSON справочнику EOS")
	sqlitePath := flag.String("sqlite", "data/eos_database.db", "путь к SQLite базе")
	flag.Parse()

	log.Printf("Импорт справочника EOS: %s -> %s", *jsonPath, *sqlitePath)

	table, err := eosdb.LoadFile(*jsonPath)
	if err != nil {
		log.Fatalf("✗ Не удалось загрузить JSON справочник: %v", err)
	}
	log.Printf("✓ JSON справочник загружен: %d продуктов", table.Len())

	store, err := eosdb.NewStore(*sqlitePath)
	if err != nil {
		log.Fatalf("✗ Не удалось открыть SQLite базу: %v", err)
	}
	defer store.Close()

	if err := store.ImportTable(table); err != nil {
		log.Fatalf("✗ Ошибка импорта в SQLite: %v", err)
	}

	products, versions, err := store.Count()
	if err != nil {
		log.Fatalf("✗ Не удалось проверить результат импорта: %v", err)
	}

	log.Printf("✓ Импорт завершен: %d продуктов, %d версий", products, versions)
}

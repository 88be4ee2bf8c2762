package eosdb

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile загружает справочник EOS из JSON файла.
// Формат файла - внешний контракт: объект
// {"<продукт>": {"<версия>": {"eos_date": "YYYY-MM-DD"|null, "source": "...", "notes": "..."}}}
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read EOS database file: %w", err)
	}

	return Parse(data)
}

// Parse разбирает справочник EOS из JSON
func Parse(data []byte) (*Table, error) {
	var raw map[string]map[string]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse EOS database: %w", err)
	}

	return NewTable(raw), nil
}

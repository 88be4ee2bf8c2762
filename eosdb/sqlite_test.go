package eosdb

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "eos_test.db"))
	if err != nil {
		t.Fatalf("NewStore вернул ошибку: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStoreImportAndLoad(t *testing.T) {
	store := setupTestStore(t)

	original := NewTable(testTableData())
	if err := store.ImportTable(original); err != nil {
		t.Fatalf("ImportTable вернул ошибку: %v", err)
	}

	products, versions, err := store.Count()
	if err != nil {
		t.Fatalf("Count вернул ошибку: %v", err)
	}
	if products != 2 || versions != 3 {
		t.Errorf("Count = (%d, %d), ожидалось (2, 3)", products, versions)
	}

	loaded, err := store.LoadTable()
	if err != nil {
		t.Fatalf("LoadTable вернул ошибку: %v", err)
	}

	if loaded.Len() != original.Len() {
		t.Errorf("Len = %d, ожидалось %d", loaded.Len(), original.Len())
	}

	record, ok := loaded.Record("microsoft office", "2019")
	if !ok || record.EOSDate == nil || *record.EOSDate != "2025-10-14" {
		t.Errorf("microsoft office/2019 = %+v, ok=%v", record, ok)
	}

	// NULL дата выживает при round-trip
	record, ok = loaded.Record("adobe acrobat", "DC")
	if !ok || record.EOSDate != nil {
		t.Errorf("adobe acrobat/DC: eos_date должна остаться nil")
	}
	if record.Notes != "subscription" {
		t.Errorf("notes = %q", record.Notes)
	}
}

// Повторный импорт замещает прежнее содержимое целиком
func TestStoreReimportReplaces(t *testing.T) {
	store := setupTestStore(t)

	if err := store.ImportTable(NewTable(testTableData())); err != nil {
		t.Fatalf("первый ImportTable: %v", err)
	}

	date := "2030-01-01"
	small := NewTable(map[string]map[string]Record{
		"python": {
			"3.12": {EOSDate: &date, Source: "python.org"},
		},
	})
	if err := store.ImportTable(small); err != nil {
		t.Fatalf("второй ImportTable: %v", err)
	}

	products, versions, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if products != 1 || versions != 1 {
		t.Errorf("Count = (%d, %d), ожидалось (1, 1)", products, versions)
	}

	loaded, err := store.LoadTable()
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if _, ok := loaded.Record("microsoft office", "2019"); ok {
		t.Error("прежнее содержимое не было замещено")
	}
}

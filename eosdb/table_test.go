package eosdb

import (
	"testing"
)

func testTableData() map[string]map[string]Record {
	date := "2025-10-14"
	return map[string]map[string]Record{
		"microsoft office": {
			"2019": {EOSDate: &date, Source: "microsoft.com"},
			"2016": {EOSDate: &date, Source: "microsoft.com"},
		},
		"adobe acrobat": {
			"DC": {EOSDate: nil, Source: "adobe.com", Notes: "subscription"},
		},
	}
}

func TestTableKeysSorted(t *testing.T) {
	table := NewTable(testTableData())

	products := table.ProductKeys()
	expected := []string{"adobe acrobat", "microsoft office"}
	if len(products) != len(expected) {
		t.Fatalf("ProductKeys() длина %d, ожидалось %d", len(products), len(expected))
	}
	for i, key := range expected {
		if products[i] != key {
			t.Errorf("ProductKeys()[%d] = %q, ожидалось %q", i, products[i], key)
		}
	}

	versions := table.VersionKeys("microsoft office")
	if len(versions) != 2 || versions[0] != "2016" || versions[1] != "2019" {
		t.Errorf("VersionKeys() = %v, ожидался отсортированный порядок", versions)
	}
}

func TestTableRecord(t *testing.T) {
	table := NewTable(testTableData())

	record, ok := table.Record("microsoft office", "2019")
	if !ok {
		t.Fatal("запись microsoft office/2019 не найдена")
	}
	if record.EOSDate == nil || *record.EOSDate != "2025-10-14" {
		t.Errorf("eos_date = %v", record.EOSDate)
	}

	record, ok = table.Record("adobe acrobat", "DC")
	if !ok {
		t.Fatal("запись adobe acrobat/DC не найдена")
	}
	if record.EOSDate != nil {
		t.Errorf("eos_date должна быть nil для подписочной записи, получено %q", *record.EOSDate)
	}

	if _, ok := table.Record("microsoft office", "1999"); ok {
		t.Error("найдена несуществующая версия")
	}
	if _, ok := table.Record("no such product", "1"); ok {
		t.Error("найден несуществующий продукт")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"python": {
			"3.9": {"eos_date": "2025-10-31", "source": "python.org", "notes": ""},
			"3.12": {"eos_date": null, "source": "python.org", "notes": "current"}
		}
	}`)

	table, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse вернул ошибку: %v", err)
	}

	if table.Len() != 1 {
		t.Errorf("Len() = %d, ожидалось 1", table.Len())
	}

	record, ok := table.Record("python", "3.9")
	if !ok || record.EOSDate == nil || *record.EOSDate != "2025-10-31" {
		t.Errorf("python/3.9 = %+v, ok=%v", record, ok)
	}

	record, ok = table.Record("python", "3.12")
	if !ok || record.EOSDate != nil {
		t.Errorf("python/3.12: eos_date должна быть nil")
	}
	if record.Notes != "current" {
		t.Errorf("notes = %q", record.Notes)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("ожидалась ошибка разбора")
	}
}

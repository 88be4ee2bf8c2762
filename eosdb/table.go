package eosdb

import "sort"

// Record запись справочника дат окончания поддержки.
// EOSDate равен nil для подписочных продуктов без объявленной даты.
type Record struct {
	EOSDate *string `json:"eos_date"`
	Source  string  `json:"source"`
	Notes   string  `json:"notes,omitempty"`
}

// Table канонический справочник EOS: ключ продукта -> ключ версии ->
// запись. После загрузки справочник только читается, поэтому его можно
// без блокировок разделять между конкурентными обработчиками.
//
// Ключи хранятся отсортированными: у map нет стабильного порядка
// обхода, а разрешение совпадений при равных оценках сходства обязано
// быть воспроизводимым.
type Table struct {
	productKeys []string
	products    map[string]productVersions
}

type productVersions struct {
	versionKeys []string
	records     map[string]Record
}

// NewTable строит справочник из сырого отображения, фиксируя порядок
// обхода ключей
func NewTable(data map[string]map[string]Record) *Table {
	t := &Table{
		productKeys: make([]string, 0, len(data)),
		products:    make(map[string]productVersions, len(data)),
	}

	for productKey, versions := range data {
		pv := productVersions{
			versionKeys: make([]string, 0, len(versions)),
			records:     make(map[string]Record, len(versions)),
		}
		for versionKey, record := range versions {
			pv.versionKeys = append(pv.versionKeys, versionKey)
			pv.records[versionKey] = record
		}
		sort.Strings(pv.versionKeys)

		t.productKeys = append(t.productKeys, productKey)
		t.products[productKey] = pv
	}
	sort.Strings(t.productKeys)

	return t
}

// ProductKeys возвращает ключи продуктов в стабильном порядке обхода
func (t *Table) ProductKeys() []string {
	return t.productKeys
}

// VersionKeys возвращает ключи версий продукта в стабильном порядке
// обхода. Неизвестный продукт - nil.
func (t *Table) VersionKeys(productKey string) []string {
	if pv, ok := t.products[productKey]; ok {
		return pv.versionKeys
	}
	return nil
}

// Record возвращает запись по паре ключей
func (t *Table) Record(productKey, versionKey string) (Record, bool) {
	pv, ok := t.products[productKey]
	if !ok {
		return Record{}, false
	}
	record, ok := pv.records[versionKey]
	return record, ok
}

// Len возвращает количество продуктов в справочнике
func (t *Table) Len() int {
	return len(t.productKeys)
}

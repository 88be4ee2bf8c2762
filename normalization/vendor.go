package normalization

import (
	"regexp"
	"strings"
)

// vendorEntry одна запись таблицы вендоров: каноническое имя и
// упорядоченный список псевдонимов
type vendorEntry struct {
	vendor  string
	aliases []vendorAlias
}

type vendorAlias struct {
	alias   string
	pattern *regexp.Regexp
}

// vendorAliasTable таблица вендор -> псевдонимы в фиксированном порядке
// приоритета. Порядок значим: первая запись таблицы, чей псевдоним
// совпал, выигрывает (пересекающиеся псевдонимы вроде "windows" должны
// уходить Microsoft, а не более поздним записям).
var vendorAliasTable = []vendorEntry{
	newVendorEntry("Microsoft", "ms", "msft", "microsoft", "sql", "windows", "win"),
	newVendorEntry("Adobe", "adobe"),
	newVendorEntry("Oracle", "oracle"),
	newVendorEntry("VMware", "vmware", "vm ware"),
	newVendorEntry("Red Hat", "redhat", "red hat", "rhel"),
	newVendorEntry("Python Software Foundation", "python"),
}

func newVendorEntry(vendor string, aliases ...string) vendorEntry {
	entry := vendorEntry{vendor: vendor}
	for _, alias := range aliases {
		entry.aliases = append(entry.aliases, vendorAlias{
			alias:   alias,
			pattern: compileWordPattern(alias),
		})
	}
	return entry
}

// ExtractVendor извлекает канонического вендора по таблице псевдонимов.
// Возвращает вендора, совпавший псевдоним и контекстные подсказки для
// извлечения версии. Нет совпадения - обе строки пусты, контекст пуст.
func ExtractVendor(text string) (vendor, matchedAlias string, ctx VendorContext) {
	lower := strings.ToLower(text)

	for _, entry := range vendorAliasTable {
		for _, alias := range entry.aliases {
			if !alias.pattern.MatchString(lower) {
				continue
			}

			ctx = VendorContext{
				MatchedAlias: alias.alias,
				IsOS: strings.Contains(alias.alias, "windows") ||
					strings.Contains(lower, "linux") ||
					strings.Contains(alias.alias, "rhel") ||
					entry.vendor == "Red Hat",
				IsDatabase: strings.Contains(lower, "database") ||
					entry.vendor == "Oracle",
			}
			return entry.vendor, alias.alias, ctx
		}
	}

	return "", "", VendorContext{}
}

package normalization

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// compoundProducts продукты, в каноническом имени которых присутствует
// имя вендора ("Windows Server", "VMware vSphere"). Для них псевдоним
// вендора из текста не вычитается.
var compoundProducts = map[string][]string{
	"Microsoft": {"windows server", "sql server", "windows"},
	"VMware":    {"vmware vsphere", "vmware"},
}

var (
	leadingDotPattern  = regexp.MustCompile(`^\s*\.\s*`)
	trailingDotPattern = regexp.MustCompile(`\s*\.\s*$`)
)

// titleCase приводит строку к заглавному регистру слов
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// ExtractProduct извлекает имя продукта вычитанием уже распознанных
// подстрок из очищенного текста. Порядок вычитания (вендор, затем
// версия, затем редакция) значим при позиционном пересечении ключевых
// слов и воспроизводится в точности.
func ExtractProduct(text, vendor, matchedAlias, version string) string {
	result := text

	// Составной продукт: имя вендора - часть имени продукта
	isCompound := false
	if vendor != "" {
		lower := strings.ToLower(result)
		for _, compound := range compoundProducts[vendor] {
			if strings.Contains(lower, compound) {
				isCompound = true
				break
			}
		}
	}

	// Вычитаем псевдоним вендора, если продукт не составной
	if matchedAlias != "" && !isCompound {
		result = compileWordPattern(matchedAlias).ReplaceAllString(result, "")
	}

	// Вычитаем версию. "DC" сохраняется: у Adobe "Acrobat DC" буквы DC -
	// часть имени продукта
	if version != "" && version != "DC" {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(version))
		result = pattern.ReplaceAllString(result, "")
	}

	// Вычитаем ключевые слова редакций
	for _, entry := range editionVocabulary {
		result = entry.pattern.ReplaceAllString(result, "")
	}

	// Чистим артефакты вычитания
	result = whitespacePattern.ReplaceAllString(result, " ")
	result = leadingDotPattern.ReplaceAllString(result, "")
	result = trailingDotPattern.ReplaceAllString(result, "")
	result = strings.TrimSpace(result)

	// Пустой остаток - откатываемся на псевдоним вендора
	if result == "" {
		if matchedAlias != "" {
			return titleCase(matchedAlias)
		}
		return ""
	}

	return titleCase(result)
}

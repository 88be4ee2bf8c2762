package normalization

import "regexp"

// Каскад шаблонов версии. Строгий порядок приоритета: первый совпавший
// шаблон выигрывает, результат возвращается дословно, без нормализации.
// Нормализация (например "19.3.0.0.0" -> "19") происходит только на
// этапе поиска в справочнике: извлечение продукта должно вычесть из
// текста ровно ту подстроку, которая в нем встретилась.
var versionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.\d+\.\d+)`), // трехчастная версия: 3.11.4
	regexp.MustCompile(`(?i)(\d+\.\d+)`),      // двухчастная версия: 8.6
	regexp.MustCompile(`(?i)(20\d{2})`),       // год: 2019, 2023
	regexp.MustCompile(`(?i)\b(\d+[a-z])\b`),  // цифры с буквой: 19c
	regexp.MustCompile(`(?i)\b(DC)\b`),        // соглашение Adobe
	regexp.MustCompile(`(?i)\b(\d{1,3})\b`),   // простое число: 365
}

// oracleVersionPattern шаблон для правила релизов Oracle: у версии вида
// "19.3.0.0.0" первые две цифры дают релиз "19c"
var oracleVersionPattern = regexp.MustCompile(`\b(\d{2})\.[\d.]+\b`)

// ExtractVersion извлекает сырую подстроку версии с учетом контекста
// вендора. Правило Oracle имеет абсолютный приоритет и обрывает общий
// каскад. Нет совпадения - пустая строка.
func ExtractVersion(text string, ctx VendorContext) string {
	// Специальный случай Oracle: буквенное обозначение релиза
	if ctx.IsDatabase && ctx.MatchedAlias == "oracle" {
		if m := oracleVersionPattern.FindStringSubmatch(text); m != nil {
			return m[1] + "c"
		}
	}

	for _, pattern := range versionPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}

	return ""
}

package normalization

import (
	"regexp"
	"strings"
)

// Правила предобработки применяются строго последовательно: поздние
// правила рассчитывают на результат ранних. Каждое правило - один проход
// слева направо, без повторного применения к уже подставленному тексту.

// acronymExpansions упорядоченная таблица раскрытия аббревиатур-акронимов.
// Раскрывается ДО остальных правил, чтобы извлечение вендора видело
// полное имя (например "RHEL 8.6" -> "Red Hat Enterprise Linux 8.6").
var acronymExpansions = []substitution{
	{compileWordPattern("RHEL"), "Red Hat Enterprise Linux"},
}

// architectureKeywords фиксированный словарь архитектурных токенов,
// которые не несут информации об идентичности продукта
var architectureKeywords = []string{
	"amd64", "x86", "x64", "x86_64", "arm64", "i386", "i686", "arm",
}

// productAbbreviations упорядоченная таблица сокращений
var productAbbreviations = []substitution{
	{compileWordPattern("db"), "database"},
	{compileWordPattern("svr"), "server"},
	{compileWordPattern("srv"), "server"},
	{compileWordPattern("win"), "windows"},
}

// substitution пара (шаблон, замена) для одного правила подстановки
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

var (
	// Маркер версии убирается только если сразу за ним идет цифра:
	// "v2019" -> "2019", но "Server" остается нетронутым
	versionMarkerPattern = regexp.MustCompile(`(?i)\b(?:version|ver|v)\s*(\d)`)

	whitespacePattern = regexp.MustCompile(`\s+`)

	architecturePatterns = compileWordPatterns(architectureKeywords)
)

// compileWordPattern компилирует регистронезависимый шаблон c границами слова
func compileWordPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
}

// compileWordPatterns компилирует шаблоны для списка токенов, сохраняя порядок
func compileWordPatterns(tokens []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(tokens))
	for _, token := range tokens {
		patterns = append(patterns, compileWordPattern(token))
	}
	return patterns
}

// Preprocess канонизирует сырой текст перед извлечением.
// Детерминированная тотальная функция: никогда не завершается ошибкой.
func Preprocess(text string) string {
	result := text

	// 1. Нормализация разделителей
	result = strings.ReplaceAll(result, "_", " ")
	result = strings.ReplaceAll(result, "-", " ")

	// 2. Раскрытие акронимов
	for _, sub := range acronymExpansions {
		result = sub.pattern.ReplaceAllString(result, sub.replacement)
	}

	// 3. Удаление маркеров версии перед цифрой
	result = versionMarkerPattern.ReplaceAllString(result, "$1")

	// 4. Удаление архитектурных токенов
	for _, pattern := range architecturePatterns {
		result = pattern.ReplaceAllString(result, "")
	}

	// 5. Раскрытие сокращений
	for _, sub := range productAbbreviations {
		result = sub.pattern.ReplaceAllString(result, sub.replacement)
	}

	// 6. Схлопывание пробелов
	result = whitespacePattern.ReplaceAllString(result, " ")

	return strings.TrimSpace(result)
}

package normalization

import "regexp"

// editionEntry пара (шаблон, каноническая редакция) словаря редакций
type editionEntry struct {
	keyword string
	pattern *regexp.Regexp
	edition string
}

// editionVocabulary упорядоченный словарь редакций. Многословные
// варианты проверяются раньше своих однословных префиксов, иначе
// "professional plus" захватился бы частично как "professional".
// Формы "<x> edition" канонизируются до "<X>".
var editionVocabulary = []editionEntry{
	newEditionEntry("professional plus", "Professional Plus"),
	newEditionEntry("professional", "Professional"),
	newEditionEntry("enterprise edition", "Enterprise"),
	newEditionEntry("enterprise", "Enterprise"),
	newEditionEntry("developer edition", "Developer"),
	newEditionEntry("developer", "Developer"),
	newEditionEntry("standard edition", "Standard"),
	newEditionEntry("standard", "Standard"),
	newEditionEntry("ultimate", "Ultimate"),
	newEditionEntry("premium", "Premium"),
	newEditionEntry("basic", "Basic"),
	newEditionEntry("home", "Home"),
	newEditionEntry("express", "Express"),
	newEditionEntry("community", "Community"),
	newEditionEntry("datacenter", "Datacenter"),
}

func newEditionEntry(keyword, edition string) editionEntry {
	return editionEntry{
		keyword: keyword,
		pattern: compileWordPattern(keyword),
		edition: edition,
	}
}

// ExtractEdition извлекает редакцию по фиксированному словарю.
// Совпадение регистронезависимое, по границам слов. Нет совпадения -
// пустая строка.
func ExtractEdition(text string) string {
	for _, entry := range editionVocabulary {
		if entry.pattern.MatchString(text) {
			return entry.edition
		}
	}
	return ""
}

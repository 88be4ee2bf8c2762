package normalization

// Normalizer конвейер нормализации свободного текста инвентаризации в
// структурированную идентичность ПО. Все этапы чистые и не разделяют
// изменяемого состояния, поэтому один Normalizer безопасно использовать
// из нескольких горутин.
type Normalizer struct{}

// NewNormalizer создает новый нормализатор
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize прогоняет сырой текст через полный конвейер извлечения.
// Никогда не завершается ошибкой: все, что не удалось извлечь, остается
// nil, а оценка полноты отражает фактически извлеченные поля.
func (n *Normalizer) Normalize(raw string) Identity {
	cleaned := Preprocess(raw)

	vendor, matchedAlias, ctx := ExtractVendor(cleaned)

	// Версия извлекается ДО продукта: вычитание продукта должно удалять
	// исходную, ненормализованную подстроку версии
	version := ExtractVersion(cleaned, ctx)
	edition := ExtractEdition(cleaned)
	product := ExtractProduct(cleaned, vendor, matchedAlias, version)

	identity := Identity{
		RawInput:     raw,
		Preprocessed: cleaned,
		Vendor:       optional(vendor),
		Product:      optional(product),
		Version:      optional(version),
		Edition:      optional(edition),
		Context:      ctx,
	}
	identity.ConfidenceScore = ConfidenceScore(
		identity.Vendor, identity.Product, identity.Version, identity.Edition)

	return identity
}

// optional превращает пустую строку в отсутствие значения
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package normalization

// VendorContext контекстные подсказки, полученные при извлечении вендора.
// Используются только для управления извлечением версии и не являются
// основным результатом нормализации.
type VendorContext struct {
	MatchedAlias string `json:"matched_alias,omitempty"`
	IsOS         bool   `json:"is_os,omitempty"`
	IsDatabase   bool   `json:"is_database,omitempty"`
}

// Empty сообщает, что вендор не был найден и контекст пуст
func (c VendorContext) Empty() bool {
	return c == VendorContext{}
}

// Identity структурированный результат нормализации свободного текста.
// Отсутствующее поле представляется nil, а не пустой строкой: отсутствие -
// это штатный сигнал "не удалось извлечь", не ошибка.
type Identity struct {
	RawInput     string  `json:"raw_input"`
	Preprocessed string  `json:"preprocessed"`
	Vendor       *string `json:"vendor"`
	Product      *string `json:"product"`
	Version      *string `json:"version"`
	Edition      *string `json:"edition"`

	// ConfidenceScore аддитивная оценка полноты извлечения, не вероятность
	ConfidenceScore float64 `json:"confidence_score"`

	// Context транзитные подсказки, нужны только внутри конвейера
	Context VendorContext `json:"context"`
}

// Веса полей для оценки полноты извлечения, в десятых долях.
// Оценка определяется ТОЛЬКО присутствием полей, частичных вкладов нет.
const (
	vendorWeightTenths  = 4
	productWeightTenths = 3
	versionWeightTenths = 2
	editionWeightTenths = 1
)

// ConfidenceScore вычисляет аддитивную оценку полноты извлечения.
// Сумма накапливается в целых десятых долях: сложение весов как float64
// дает 0.4+0.3+0.2+0.1 = 0.9999999999999999 вместо ровно 1.0.
func ConfidenceScore(vendor, product, version, edition *string) float64 {
	tenths := 0
	if vendor != nil {
		tenths += vendorWeightTenths
	}
	if product != nil {
		tenths += productWeightTenths
	}
	if version != nil {
		tenths += versionWeightTenths
	}
	if edition != nil {
		tenths += editionWeightTenths
	}
	return float64(tenths) / 10
}

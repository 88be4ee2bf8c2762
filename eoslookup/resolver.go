package eoslookup

import (
	"strings"

	"eoscan/eosdb"
)

// Пороги принятия нечеткого совпадения на шкале 0-100.
// Значения ниже порога означают "в справочнике данных нет", не ошибку.
const (
	productScoreThreshold = 70
	versionScoreThreshold = 60
)

// MatchConfidence пооценочная уверенность нечеткого разрешения.
// Не путать с оценкой полноты извлечения: здесь оценки сходства строк.
type MatchConfidence struct {
	Product int     `json:"product"`
	Version int     `json:"version"`
	Overall float64 `json:"overall"`
}

// Resolved запись справочника, найденная нечетким разрешением
type Resolved struct {
	ProductKey string          `json:"product_key"`
	VersionKey string          `json:"version_key"`
	Record     eosdb.Record    `json:"record"`
	Confidence MatchConfidence `json:"match_confidence"`
}

// Resolver сопоставляет нормализованную идентичность с каноническим
// справочником EOS несмотря на разброс псевдонимов вендоров, дрейф
// форматов версий и частичные совпадения ключей
type Resolver struct {
	table *eosdb.Table
}

// NewResolver создает новый резолвер над справочником
func NewResolver(table *eosdb.Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve ищет запись справочника для тройки (вендор, продукт, версия).
// Все три поля обязаны быть непустыми: частичное разрешение не
// выполняется, это ответственность вызывающего. Неудача на любом этапе
// дает nil - "нет данных EOS", не ошибку.
func (r *Resolver) Resolve(vendor, product, version string) *Resolved {
	productKey, productScore := r.matchProduct(vendor, product)
	if productScore < productScoreThreshold {
		return nil
	}

	versionKey, versionScore := r.matchVersion(productKey, version)
	if versionScore < versionScoreThreshold {
		return nil
	}

	record, ok := r.table.Record(productKey, versionKey)
	if !ok {
		return nil
	}

	return &Resolved{
		ProductKey: productKey,
		VersionKey: versionKey,
		Record:     record,
		Confidence: MatchConfidence{
			Product: productScore,
			Version: versionScore,
			Overall: float64(productScore+versionScore) / 2,
		},
	}
}

// matchProduct находит лучший ключ продукта по всем кандидатам запроса.
// При равенстве оценок выигрывает ключ, встреченный раньше в порядке
// обхода справочника (стабильный, воспроизводимый выбор).
func (r *Resolver) matchProduct(vendor, product string) (string, int) {
	candidates := productCandidates(vendor, product)

	bestKey := ""
	bestScore := -1

	for _, candidate := range candidates {
		for _, key := range r.table.ProductKeys() {
			score := Similarity(candidate, strings.ToLower(key), StrategyTokenSort)
			if score > bestScore {
				bestKey = key
				bestScore = score
			}
		}
	}

	return bestKey, bestScore
}

// matchVersion находит ключ версии среди версий уже найденного продукта.
// Сначала точное членство (оценка 100, обрывает поиск), затем нечеткое
// сравнение с порогом.
func (r *Resolver) matchVersion(productKey, version string) (string, int) {
	available := r.table.VersionKeys(productKey)
	candidates := versionCandidates(version)

	// Точное совпадение одного из кандидатов
	for _, candidate := range candidates {
		if _, ok := r.table.Record(productKey, candidate); ok {
			return candidate, 100
		}
	}

	bestKey := ""
	bestScore := -1

	for _, candidate := range candidates {
		for _, key := range available {
			score := Similarity(strings.ToLower(candidate), strings.ToLower(key), StrategyRatio)
			if score > bestScore {
				bestKey = key
				bestScore = score
			}
		}
	}

	return bestKey, bestScore
}

// productCandidates строит строки запроса для поиска продукта:
// "вендор продукт" и "продукт", в нижнем регистре, без дублей
func productCandidates(vendor, product string) []string {
	full := strings.ToLower(strings.TrimSpace(vendor + " " + product))
	bare := strings.ToLower(strings.TrimSpace(product))

	if full == bare || bare == "" {
		return []string{full}
	}
	return []string{full, bare}
}

// versionCandidates строит кандидатов поиска версии: сырая версия,
// нормализованная, для двухчастных - мажорная компонента, для
// трехчастных - мажорно-минорная. Порядок кандидатов значим.
func versionCandidates(version string) []string {
	candidates := []string{version}

	appendUnique := func(candidate string) {
		for _, existing := range candidates {
			if existing == candidate {
				return
			}
		}
		candidates = append(candidates, candidate)
	}

	appendUnique(NormalizeVersionKey(version))

	parts := strings.Split(version, ".")
	switch len(parts) {
	case 2:
		appendUnique(parts[0])
	case 3:
		appendUnique(parts[0] + "." + parts[1])
	}

	return candidates
}

// NormalizeVersionKey нормализует строку версии для поиска в
// справочнике. Идентичность при этом не изменяется: нормализованная
// форма существует только как кандидат запроса.
//
// Правила: версии с буквенным суффиксом "c" проходят без изменений
// (соглашение Oracle); больше трех точечных частей - остается первая
// часть; ровно три части "X.Y.Z" - сокращение до "X.Y"; одно- и
// двухчастные версии проходят без изменений (нормализация идемпотентна
// для уже нормализованных кандидатов).
func NormalizeVersionKey(version string) string {
	if strings.HasSuffix(version, "c") {
		return version
	}

	parts := strings.Split(version, ".")
	switch {
	case len(parts) > 3:
		return parts[0]
	case len(parts) == 3:
		return parts[0] + "." + parts[1]
	default:
		return version
	}
}

package pipeline

import (
	"sync"
	"time"

	"eoscan/eosdb"
	"eoscan/eoslookup"
	"eoscan/normalization"
	"eoscan/risk"
)

// Row одна строка инвентаризации на входе конвейера
type Row struct {
	SoftwareName string `json:"software_name"`
	InstallDate  string `json:"install_date"`
	Source       string `json:"source"`
}

// Result плоский результат обработки одной строки: нормализованная
// идентичность, найденные данные EOS и оценка риска. Поля с nil
// сериализуются как null - отсутствие данных является частью контракта.
type Result struct {
	RawInput    string `json:"raw_input"`
	InstallDate string `json:"install_date"`
	Source      string `json:"source"`

	Vendor          *string `json:"vendor"`
	Product         *string `json:"product"`
	Version         *string `json:"version"`
	Edition         *string `json:"edition"`
	ConfidenceScore float64 `json:"confidence_score"`

	EOSDate         *string                    `json:"eos_date"`
	EOSSource       *string                    `json:"eos_source"`
	MatchConfidence *eoslookup.MatchConfidence `json:"match_confidence"`

	RiskLevel    risk.Level `json:"risk_level"`
	DaysUntilEOS *int       `json:"days_until_eos"`
	RiskReason   string     `json:"risk_reason"`
}

// Summary агрегированные счетчики по уровням риска
type Summary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Unknown  int `json:"unknown"`
}

// Processor трехэтапный конвейер: нормализация, разрешение в справочнике
// EOS, классификация риска. Все этапы детерминированы, Processor безопасен
// для использования из нескольких горутин.
type Processor struct {
	normalizer *normalization.Normalizer
	resolver   *eoslookup.Resolver
	workers    int
}

// NewProcessor создает новый конвейер обработки над справочником EOS.
// workers ограничивает параллелизм ProcessRows; значения меньше 1
// означают последовательную обработку.
func NewProcessor(table *eosdb.Table, workers int) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		normalizer: normalization.NewNormalizer(),
		resolver:   eoslookup.NewResolver(table),
		workers:    workers,
	}
}

// ProcessRow обрабатывает одну строку инвентаризации.
// Разрешение в справочнике выполняется только при полной тройке
// вендор+продукт+версия: частичная идентичность дает UNKNOWN без
// попытки угадывания.
func (p *Processor) ProcessRow(row Row, today time.Time) Result {
	identity := p.normalizer.Normalize(row.SoftwareName)

	result := Result{
		RawInput:        row.SoftwareName,
		InstallDate:     row.InstallDate,
		Source:          row.Source,
		Vendor:          identity.Vendor,
		Product:         identity.Product,
		Version:         identity.Version,
		Edition:         identity.Edition,
		ConfidenceScore: identity.ConfidenceScore,
	}

	var resolved *eoslookup.Resolved
	if identity.Vendor != nil && identity.Product != nil && identity.Version != nil {
		resolved = p.resolver.Resolve(*identity.Vendor, *identity.Product, *identity.Version)
	}

	if resolved == nil {
		result.RiskLevel = risk.LevelUnknown
		result.RiskReason = "No EOS data available"
		return result
	}

	result.EOSDate = resolved.Record.EOSDate
	source := resolved.Record.Source
	result.EOSSource = &source
	confidence := resolved.Confidence
	result.MatchConfidence = &confidence

	assessment := risk.Classify(resolved.Record.EOSDate, today)
	result.RiskLevel = assessment.RiskLevel
	result.DaysUntilEOS = assessment.DaysUntilEOS
	result.RiskReason = assessment.Reason

	return result
}

// ProcessRows обрабатывает пакет строк с ограниченным параллелизмом.
// Порядок результатов совпадает с порядком входных строк независимо от
// порядка завершения воркеров.
func (p *Processor) ProcessRows(rows []Row, today time.Time) []Result {
	results := make([]Result, len(rows))
	if len(rows) == 0 {
		return results
	}

	type job struct {
		index int
		row   Row
	}

	jobs := make(chan job)
	var wg sync.WaitGroup

	workers := p.workers
	if workers > len(rows) {
		workers = len(rows)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = p.ProcessRow(j.row, today)
			}
		}()
	}

	for i, row := range rows {
		jobs <- job{index: i, row: row}
	}
	close(jobs)
	wg.Wait()

	return results
}

// Summarize подсчитывает результаты по уровням риска
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		switch result.RiskLevel {
		case risk.LevelCritical:
			summary.Critical++
		case risk.LevelHigh:
			summary.High++
		case risk.LevelMedium:
			summary.Medium++
		case risk.LevelLow:
			summary.Low++
		default:
			summary.Unknown++
		}
	}
	return summary
}

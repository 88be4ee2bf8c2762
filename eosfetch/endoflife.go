package eosfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// EndOfLifeProvider провайдер JSON API endoflife.date.
// API публичный и без ключей, но запросы ограничиваются limiter'ом,
// чтобы массовый импорт не выглядел как флуд.
type EndOfLifeProvider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewEndOfLifeProvider создает новый провайдер endoflife.date
func NewEndOfLifeProvider(timeout time.Duration, rateLimit time.Duration) *EndOfLifeProvider {
	return &EndOfLifeProvider{
		baseURL: "https://endoflife.date/api",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(rateLimit), 1),
	}
}

// GetName возвращает имя провайдера
func (p *EndOfLifeProvider) GetName() string {
	return "endoflife.date"
}

// eolCycle один цикл поддержки в ответе API.
// Поле eol неоднородно: строка-дата "YYYY-MM-DD" либо булево
// (false - поддерживается, true - поддержка закончена без даты).
type eolCycle struct {
	Cycle string          `json:"cycle"`
	EOL   json.RawMessage `json:"eol"`
}

// FetchProduct загружает циклы поддержки продукта через JSON API
func (p *EndOfLifeProvider) FetchProduct(ctx context.Context, slug string) ([]VersionEOS, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	fullURL := fmt.Sprintf("%s/%s.json", p.baseURL, slug)

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "eoscan/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("product %q not found on endoflife.date", slug)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
	}

	var cycles []eolCycle
	if err := json.NewDecoder(resp.Body).Decode(&cycles); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	versions := make([]VersionEOS, 0, len(cycles))
	for _, cycle := range cycles {
		if cycle.Cycle == "" {
			continue
		}
		versions = append(versions, VersionEOS{
			VersionKey: cycle.Cycle,
			EOSDate:    parseEOLField(cycle.EOL),
		})
	}

	return versions, nil
}

// parseEOLField разбирает неоднородное поле eol.
// Дата возвращается как есть; булевы значения и мусор дают nil
// (дата окончания поддержки не объявлена).
func parseEOLField(raw json.RawMessage) *string {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil && asString != "" {
		return &asString
	}
	return nil
}

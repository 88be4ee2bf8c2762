package eosfetch

import (
	"context"
	"fmt"
	"log/slog"

	"eoscan/eosdb"
)

// ProductMapping связь между slug'ом продукта у внешнего источника и
// каноническим ключом справочника EOS
type ProductMapping struct {
	Slug       string `json:"slug"`
	ProductKey string `json:"product_key"`
}

// DefaultMappings продукты, отслеживаемые по умолчанию
var DefaultMappings = []ProductMapping{
	{Slug: "office", ProductKey: "microsoft office"},
	{Slug: "windows-server", ProductKey: "microsoft windows server"},
	{Slug: "windows", ProductKey: "microsoft windows"},
	{Slug: "mssqlserver", ProductKey: "microsoft sql server"},
	{Slug: "oracle-database", ProductKey: "oracle database"},
	{Slug: "rhel", ProductKey: "red hat enterprise linux"},
	{Slug: "python", ProductKey: "python"},
}

// Fetcher собирает справочник EOS из внешних источников.
// Провайдеры опрашиваются по порядку: следующий пробуется только при
// отказе предыдущего.
type Fetcher struct {
	providers []Provider
	logger    *slog.Logger
}

// NewFetcher создает новый сборщик справочника
func NewFetcher(logger *slog.Logger, providers ...Provider) *Fetcher {
	return &Fetcher{
		providers: providers,
		logger:    logger,
	}
}

// FetchTable загружает данные EOS по всем маппингам и собирает справочник.
// Продукты, которые не удалось получить ни от одного провайдера,
// пропускаются с записью в лог; полный отказ по всем продуктам - ошибка.
func (f *Fetcher) FetchTable(ctx context.Context, mappings []ProductMapping) (*eosdb.Table, error) {
	data := make(map[string]map[string]eosdb.Record)

	for _, mapping := range mappings {
		versions, providerName, err := f.fetchWithFallback(ctx, mapping.Slug)
		if err != nil {
			f.logger.Warn("не удалось получить данные EOS продукта",
				"slug", mapping.Slug, "error", err)
			continue
		}

		records := make(map[string]eosdb.Record, len(versions))
		for _, version := range versions {
			records[version.VersionKey] = eosdb.Record{
				EOSDate: version.EOSDate,
				Source:  providerName,
				Notes:   version.Notes,
			}
		}
		data[mapping.ProductKey] = records

		f.logger.Info("получены данные EOS продукта",
			"slug", mapping.Slug, "product_key", mapping.ProductKey,
			"versions", len(records), "provider", providerName)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no eos data fetched from any provider")
	}

	return eosdb.NewTable(data), nil
}

// fetchWithFallback опрашивает провайдеров по порядку до первого успеха
func (f *Fetcher) fetchWithFallback(ctx context.Context, slug string) ([]VersionEOS, string, error) {
	var lastErr error
	for _, provider := range f.providers {
		versions, err := provider.FetchProduct(ctx, slug)
		if err == nil {
			return versions, provider.GetName(), nil
		}
		lastErr = err
		f.logger.Debug("провайдер не ответил, пробуем следующий",
			"provider", provider.GetName(), "slug", slug, "error", err)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no providers configured")
	}
	return nil, "", lastErr
}

package eosfetch

import "context"

// VersionEOS данные EOS одной версии продукта, полученные от внешнего
// источника. EOSDate nil означает "поддержка не ограничена датой".
type VersionEOS struct {
	VersionKey string  `json:"version_key"`
	EOSDate    *string `json:"eos_date"`
	Notes      string  `json:"notes"`
}

// Provider внешний источник данных EOS.
// slug - идентификатор продукта в терминах источника (например "windows-server"
// для endoflife.date), не канонический ключ справочника.
type Provider interface {
	// GetName возвращает имя провайдера
	GetName() string

	// FetchProduct загружает циклы поддержки продукта
	FetchProduct(ctx context.Context, slug string) ([]VersionEOS, error)
}

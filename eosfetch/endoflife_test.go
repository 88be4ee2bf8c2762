package eosfetch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestEndOfLifeFetchProduct(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rhel.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"cycle": "9", "eol": "2032-05-31"},
			{"cycle": "8", "eol": "2029-05-31"},
			{"cycle": "7", "eol": false},
			{"cycle": "", "eol": "2020-01-01"}
		]`))
	}))
	defer ts.Close()

	p := NewEndOfLifeProvider(5*time.Second, time.Millisecond)
	p.baseURL = ts.URL

	versions, err := p.FetchProduct(context.Background(), "rhel")
	if err != nil {
		t.Fatalf("FetchProduct вернул ошибку: %v", err)
	}

	// Цикл без имени отброшен
	if len(versions) != 3 {
		t.Fatalf("len(versions) = %d, ожидалось 3", len(versions))
	}

	if versions[0].VersionKey != "9" || versions[0].EOSDate == nil || *versions[0].EOSDate != "2032-05-31" {
		t.Errorf("versions[0] = %+v", versions[0])
	}
	// Булево eol означает отсутствие объявленной даты
	if versions[2].VersionKey != "7" || versions[2].EOSDate != nil {
		t.Errorf("versions[2] = %+v", versions[2])
	}
}

func TestEndOfLifeFetchProductNotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	p := NewEndOfLifeProvider(5*time.Second, time.Millisecond)
	p.baseURL = ts.URL

	if _, err := p.FetchProduct(context.Background(), "nonexistent"); err == nil {
		t.Error("ожидалась ошибка для неизвестного продукта")
	}
}

// При отказе первого провайдера сборщик переходит к следующему
func TestFetcherFallback(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"cycle": "2019", "eol": "2025-10-14"}]`))
	}))
	defer working.Close()

	first := NewEndOfLifeProvider(5*time.Second, time.Millisecond)
	first.baseURL = failing.URL
	second := NewEndOfLifeProvider(5*time.Second, time.Millisecond)
	second.baseURL = working.URL

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	fetcher := NewFetcher(logger, first, second)

	table, err := fetcher.FetchTable(context.Background(), []ProductMapping{
		{Slug: "office", ProductKey: "microsoft office"},
	})
	if err != nil {
		t.Fatalf("FetchTable вернул ошибку: %v", err)
	}

	record, ok := table.Record("microsoft office", "2019")
	if !ok {
		t.Fatal("запись не найдена после фолбэка")
	}
	if record.EOSDate == nil || *record.EOSDate != "2025-10-14" {
		t.Errorf("eos_date = %v", record.EOSDate)
	}
}

// Полный отказ всех провайдеров по всем продуктам - ошибка
func TestFetcherAllProvidersFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	p := NewEndOfLifeProvider(5*time.Second, time.Millisecond)
	p.baseURL = failing.URL

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	fetcher := NewFetcher(logger, p)

	if _, err := fetcher.FetchTable(context.Background(), []ProductMapping{
		{Slug: "office", ProductKey: "microsoft office"},
	}); err == nil {
		t.Error("ожидалась ошибка при полном отказе провайдеров")
	}
}

package eosfetch

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// HTMLTableProvider запасной провайдер: разбирает таблицу релизов на
// HTML странице продукта endoflife.date. Используется, когда JSON API
// недоступен или отдает неполные данные.
type HTMLTableProvider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewHTMLTableProvider создает новый HTML провайдер endoflife.date
func NewHTMLTableProvider(timeout time.Duration, rateLimit time.Duration) *HTMLTableProvider {
	return &HTMLTableProvider{
		baseURL: "https://endoflife.date",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(rateLimit), 1),
	}
}

// GetName возвращает имя провайдера
func (p *HTMLTableProvider) GetName() string {
	return "endoflife.date-html"
}

// isoDatePattern дата вида YYYY-MM-DD внутри ячейки таблицы
var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// FetchProduct разбирает таблицу релизов со страницы продукта.
// Первая колонка таблицы - цикл (версия), колонка с датой EOS ищется
// по заголовку, содержащему "support" или "eol".
func (p *HTMLTableProvider) FetchProduct(ctx context.Context, slug string) ([]VersionEOS, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	fullURL := fmt.Sprintf("%s/%s", p.baseURL, slug)

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "eoscan/1.0")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no release table found for %q", slug)
	}

	eolColumn := -1
	table.Find("thead th").Each(func(i int, th *goquery.Selection) {
		header := strings.ToLower(strings.TrimSpace(th.Text()))
		if eolColumn == -1 && (strings.Contains(header, "support") || strings.Contains(header, "eol")) {
			eolColumn = i
		}
	})
	if eolColumn == -1 {
		return nil, fmt.Errorf("no eol column found in release table for %q", slug)
	}

	var versions []VersionEOS
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() <= eolColumn {
			return
		}

		cycle := strings.TrimSpace(cells.Eq(0).Text())
		if cycle == "" {
			return
		}

		version := VersionEOS{VersionKey: cycle}
		if date := isoDatePattern.FindString(cells.Eq(eolColumn).Text()); date != "" {
			version.EOSDate = &date
		}
		versions = append(versions, version)
	})

	if len(versions) == 0 {
		return nil, fmt.Errorf("release table for %q has no rows", slug)
	}

	return versions, nil
}

package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"

	"crosscheck/pkg/news"
)

const (
	fetchWorkers   = 5
	defaultTimeout = 20 * time.Second
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

type Scraper struct {
	httpClient *http.Client
}

func NewScraper(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Scraper{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchText retrieves a page and returns its paragraph text as a single
// cleaned line with the trailing boilerplate sentences removed.
func (s *Scraper) FetchText(ctx context.Context, rawURL string) (string, error) {
	pageURL := normalizeURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("scrape request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("scrape fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scrape fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("scrape parse: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return trimBoilerplate(cleanText(strings.Join(paragraphs, "\n"))), nil
}

// FillAll fetches every article's page concurrently and writes the cleaned
// text into FullContent in place. A failed article keeps an empty
// FullContent and never aborts the batch. Returns the failure count.
func (s *Scraper) FillAll(ctx context.Context, articles []news.Article) int {
	if len(articles) == 0 {
		return 0
	}

	workers := fetchWorkers
	if len(articles) < workers {
		workers = len(articles)
	}

	jobs := make(chan int, len(articles))
	var wg sync.WaitGroup
	var failures atomic.Int64

	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				text, err := s.FetchText(ctx, articles[i].URL)
				if err != nil {
					slog.Warn("article fetch failed", "url", articles[i].URL, "error", err)
					articles[i].FullContent = ""
					failures.Add(1)
				} else {
					articles[i].FullContent = text
				}
				wg.Done()
			}
		}()
	}

	for i := range articles {
		wg.Add(1)
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return int(failures.Load())
}

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const newsAPIBase = "https://newsapi.org/v2"

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Search(ctx context.Context, query string, opts SearchOptions) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	if !opts.From.IsZero() {
		params.Set("from", opts.From.Format("2006-01-02"))
	}
	if !opts.To.IsZero() {
		params.Set("to", opts.To.Format("2006-01-02"))
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "publishedAt"
	}
	params.Set("sortBy", sortBy)
	if opts.Language != "" {
		params.Set("language", opts.Language)
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", c.apiKey)

	return c.fetch(ctx, newsAPIBase+"/everything?"+params.Encode())
}

func (c *NewsAPIClient) TopHeadlines(ctx context.Context, category string, limit int) ([]Article, error) {
	params := url.Values{}
	params.Set("country", "us")
	if category != "" {
		params.Set("category", category)
	}
	if limit <= 0 {
		limit = 20
	}
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("apiKey", c.apiKey)

	return c.fetch(ctx, newsAPIBase+"/top-headlines?"+params.Encode())
}

func (c *NewsAPIClient) fetch(ctx context.Context, requestURL string) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi error %s: %s", raw.Code, raw.Message)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			ExternalID:  generateExternalID(item.URL),
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.URL,
			Publisher:   item.Source.Name,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
	Source      newsAPISource `json:"source"`
}

type newsAPISource struct {
	Name string `json:"name"`
}

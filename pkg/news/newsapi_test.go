package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestGenerateExternalID(t *testing.T) {
	url := "https://example.com/article/123"

	id1 := generateExternalID(url)
	id2 := generateExternalID(url)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 16, len(id1))

	other := generateExternalID("https://example.com/article/456")
	assert.NotEqual(t, id1, other)
}

func TestNewsAPISearch(t *testing.T) {
	payload := map[string]interface{}{
		"status": "ok",
		"articles": []map[string]interface{}{
			{
				"title":       "Fed Holds Rates Steady",
				"description": "The Federal Reserve kept interest rates unchanged.",
				"content":     "The Federal Reserve kept interest rates unchanged on Wednesday.",
				"url":         "https://example.com/fed-rates",
				"publishedAt": "2026-02-26T12:00:00Z",
				"source":      map[string]interface{}{"name": "Reuters"},
			},
		},
	}

	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Search(context.Background(), "interest rates", SearchOptions{
		From:     time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Language: "en",
		PageSize: 5,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Fed Holds Rates Steady", a.Title)
	assert.Equal(t, "The Federal Reserve kept interest rates unchanged.", a.Description)
	assert.Equal(t, "https://example.com/fed-rates", a.URL)
	assert.Equal(t, "Reuters", a.Publisher)
	assert.Equal(t, "NewsAPI", a.Source)
	assert.Equal(t, "", a.FullContent)
	assert.Equal(t, generateExternalID("https://example.com/fed-rates"), a.ExternalID)
	assert.NotEqual(t, time.Time{}, a.PublishedAt)

	assert.Equal(t, "interest rates", gotQuery["q"][0])
	assert.Equal(t, "2026-02-20", gotQuery["from"][0])
	assert.Equal(t, "publishedAt", gotQuery["sortBy"][0])
	assert.Equal(t, "en", gotQuery["language"][0])
	assert.Equal(t, "5", gotQuery["pageSize"][0])
	assert.Equal(t, "test-key", gotQuery["apiKey"][0])
}

func TestNewsAPITopHeadlines(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "ok", "articles": []interface{}{}})
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.TopHeadlines(context.Background(), "technology", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
	assert.Equal(t, "technology", gotQuery["category"][0])
	assert.Equal(t, "10", gotQuery["pageSize"][0])
	assert.Equal(t, "us", gotQuery["country"][0])
}

func TestNewsAPIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"code":    "apiKeyInvalid",
			"message": "Your API key is invalid.",
		})
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "bad-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Search(context.Background(), "anything", SearchOptions{})

	assert.NotEqual(t, nil, err)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}

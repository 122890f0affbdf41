package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"budget" - Google News</title>
<item>
<title>City Council Approves New Budget - Local Times</title>
<link>https://example.com/budget</link>
<description>The council passed the budget on Tuesday.</description>
<pubDate>Wed, 25 Feb 2026 12:00:00 GMT</pubDate>
</item>
<item>
<title>Budget Debate Continues - The Herald</title>
<link>https://example.com/debate</link>
<description>Opposition questions spending priorities.</description>
<pubDate>Wed, 25 Feb 2026 09:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

func TestGoogleNewsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewGoogleNewsClient()
	articles, err := client.fetch(context.Background(), srv.URL, 20)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "City Council Approves New Budget", a.Title)
	assert.Equal(t, "Local Times", a.Publisher)
	assert.Equal(t, "https://example.com/budget", a.URL)
	assert.Equal(t, "GoogleNews", a.Source)
	assert.Equal(t, 2026, a.PublishedAt.Year())
}

func TestGoogleNewsFetchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewGoogleNewsClient()
	articles, err := client.fetch(context.Background(), srv.URL, 1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
}

func TestGoogleNewsUnknownCategory(t *testing.T) {
	client := NewGoogleNewsClient()
	_, err := client.TopHeadlines(context.Background(), "astrology", 10)

	assert.NotEqual(t, nil, err)
}

func TestSplitGoogleTitle(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		title     string
		publisher string
	}{
		{
			name:      "title with publisher",
			input:     "Markets Rally After Rate Decision - Reuters",
			title:     "Markets Rally After Rate Decision",
			publisher: "Reuters",
		},
		{
			name:      "dash inside headline keeps last separator",
			input:     "Win - win deal announced - The Herald",
			title:     "Win - win deal announced",
			publisher: "The Herald",
		},
		{
			name:      "no separator",
			input:     "Plain headline",
			title:     "Plain headline",
			publisher: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, publisher := splitGoogleTitle(tt.input)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.publisher, publisher)
		})
	}
}

package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const googleNewsBase = "https://news.google.com/rss"

type GoogleNewsClient struct {
	parser *gofeed.Parser
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{parser: gofeed.NewParser()}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNews"
}

var googleNewsTopics = map[string]string{
	"world":         "WORLD",
	"nation":        "NATION",
	"business":      "BUSINESS",
	"technology":    "TECHNOLOGY",
	"entertainment": "ENTERTAINMENT",
	"science":       "SCIENCE",
	"sports":        "SPORTS",
	"health":        "HEALTH",
}

func (c *GoogleNewsClient) Search(ctx context.Context, query string, opts SearchOptions) ([]Article, error) {
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}
	feedURL := fmt.Sprintf("%s/search?q=%s&%s", googleNewsBase, url.QueryEscape(query), localeParams(lang))

	limit := opts.PageSize
	if limit <= 0 {
		limit = 20
	}
	return c.fetch(ctx, feedURL, limit)
}

func (c *GoogleNewsClient) TopHeadlines(ctx context.Context, category string, limit int) ([]Article, error) {
	feedURL := googleNewsBase + "?" + localeParams("en")
	if category != "" {
		topic, ok := googleNewsTopics[strings.ToLower(category)]
		if !ok {
			return nil, fmt.Errorf("unknown headlines category %q", category)
		}
		feedURL = fmt.Sprintf("%s/headlines/section/topic/%s?%s", googleNewsBase, topic, localeParams("en"))
	}
	if limit <= 0 {
		limit = 20
	}
	return c.fetch(ctx, feedURL, limit)
}

func (c *GoogleNewsClient) fetch(ctx context.Context, feedURL string, limit int) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(articles) >= limit {
			break
		}

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		}

		title, publisher := splitGoogleTitle(item.Title)

		articles = append(articles, Article{
			ExternalID:  generateExternalID(item.Link),
			Title:       title,
			Description: item.Description,
			URL:         item.Link,
			Publisher:   publisher,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

// splitGoogleTitle separates the "Headline - Publisher" convention Google
// News uses in item titles.
func splitGoogleTitle(title string) (string, string) {
	idx := strings.LastIndex(title, " - ")
	if idx < 0 {
		return title, ""
	}
	return title[:idx], title[idx+3:]
}

func localeParams(lang string) string {
	params := url.Values{}
	params.Set("hl", lang)
	params.Set("gl", "US")
	params.Set("ceid", "US:"+lang)
	return params.Encode()
}

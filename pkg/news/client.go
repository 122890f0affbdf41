package news

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"
)

type Article struct {
	ExternalID  string
	Title       string
	Description string
	Content     string
	URL         string
	Source      string
	Publisher   string
	PublishedAt time.Time

	// FullContent is empty until the scraper fills it in place.
	FullContent string
}

type SearchOptions struct {
	From     time.Time
	To       time.Time
	SortBy   string
	Language string
	PageSize int
}

type NewsClient interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]Article, error)
	TopHeadlines(ctx context.Context, category string, limit int) ([]Article, error)
	Name() string
}

func generateExternalID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)[:16]
}

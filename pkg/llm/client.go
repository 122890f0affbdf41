package llm

import (
	"context"
	"errors"
	"strings"
)

// Request is a single completion call. MaxTokens <= 0 uses the backend default.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

type LLMClient interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// ErrRateLimited marks provider 429 replies so batch callers can back off.
var ErrRateLimited = errors.New("rate limited")

func IsRateLimit(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

const defaultMaxTokens = 1024

// CleanJSONResponse strips code-fence markup from a reply expected to carry
// a single JSON object.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

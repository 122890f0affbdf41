package clickbait

import (
	"context"
	"strings"
)

// markerPhrases are case-insensitive substrings that mark a headline as
// clickbait. Any single hit decides the verdict.
var markerPhrases = []string{
	"you won't believe",
	"you will never guess",
	"you'll never guess",
	"what happens next",
	"what happened next",
	"shocking",
	"shocked",
	"jaw-dropping",
	"mind-blowing",
	"will blow your mind",
	"secret",
	"this one trick",
	"one weird trick",
	"doctors hate",
	"you need to know",
	"before you die",
	"changed forever",
	"can't handle",
	"unbelievable",
	"insane",
	"go viral",
	"number one reason",
	"the real reason",
	"this is why",
	"find out why",
	"wait until you see",
}

// KeywordDetector is the local strategy: no network, no model, just a
// phrase list.
type KeywordDetector struct{}

func (KeywordDetector) Name() string {
	return "keyword"
}

func (KeywordDetector) Classify(_ context.Context, title string) string {
	lower := strings.ToLower(title)
	for _, phrase := range markerPhrases {
		if strings.Contains(lower, phrase) {
			return Yes
		}
	}
	return No
}

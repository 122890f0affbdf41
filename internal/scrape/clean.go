package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	unicodeEscape    = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	sentenceBoundary = regexp.MustCompile(`([.!?]+)\s+`)
)

// normalizeURL decodes \uXXXX escapes that upstream JSON encoding can leave
// in URLs and drops any remaining stray backslashes.
func normalizeURL(rawURL string) string {
	return strings.ReplaceAll(unescapeUnicode(rawURL), `\`, "")
}

func unescapeUnicode(s string) string {
	return unicodeEscape.ReplaceAllStringFunc(s, func(match string) string {
		code, err := strconv.ParseUint(match[2:], 16, 32)
		if err != nil {
			return match
		}
		return string(rune(code))
	})
}

// cleanText flattens extracted paragraph text into one printable line:
// unescape, newlines to spaces, strip non-printables, collapse whitespace.
func cleanText(text string) string {
	text = unescapeUnicode(text)
	text = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, text)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// splitSentences breaks cleaned text at sentence-ending punctuation followed
// by whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	marked := sentenceBoundary.ReplaceAllString(text, "$1\n")
	var sentences []string
	for _, part := range strings.Split(marked, "\n") {
		if part = strings.TrimSpace(part); part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// trimBoilerplate drops the final two sentences; article pages routinely end
// with byline and promo sentences rather than body text.
func trimBoilerplate(text string) string {
	sentences := splitSentences(text)
	if len(sentences) <= 2 {
		return text
	}
	return strings.Join(sentences[:len(sentences)-2], " ")
}

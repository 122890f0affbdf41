package textnorm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "Markets Rally, Again!",
			want:  []string{"markets", "rally"},
		},
		{
			name:  "drops digits",
			input: "GDP grew 3.5 percent in 2026",
			want:  []string{"gdp", "grew", "percent"},
		},
		{
			name:  "removes stopwords",
			input: "The council approved the new budget",
			want:  []string{"council", "approved", "new", "budget"},
		},
		{
			name:  "only stopwords yields nothing",
			input: "this is just about it",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

package llm

import (
	"reflect"
	"testing"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain list",
			input: "go, http, sentiment",
			want:  []string{"go", "http", "sentiment"},
		},
		{
			name:  "trims segments and drops empty ones",
			input: "alpha, beta ,  , gamma",
			want:  []string{"alpha", "beta", "gamma"},
		},
		{
			name:  "keeps duplicates and order",
			input: "beta, alpha, beta",
			want:  []string{"beta", "alpha", "beta"},
		},
		{
			name:  "single keyword without commas",
			input: "  standalone  ",
			want:  []string{"standalone"},
		},
		{
			name:  "only separators",
			input: " , ,, ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseKeywords(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeSentiment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase label gets capitalized",
			input: "positive",
			want:  "Positive",
		},
		{
			name:  "only the first character changes case",
			input: "positive happy",
			want:  "Positive happy",
		},
		{
			name:  "already uppercase stays untouched",
			input: "NEGATIVE overall",
			want:  "NEGATIVE overall",
		},
		{
			name:  "all caps label passes through",
			input: "POSITIVE",
			want:  "POSITIVE",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  neutral \n",
			want:  "Neutral",
		},
		{
			name:  "empty reply stays empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeSentiment(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

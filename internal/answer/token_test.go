package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAnswers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "no comma keeps the string whole", input: "abc", want: []string{"abc"}},
		{name: "two parts", input: "3,-3", want: []string{"3", "-3"}},
		{name: "keeps surrounding spaces", input: "1, 2", want: []string{"1", " 2"}},
		{name: "trailing comma yields empty part", input: "1,", want: []string{"1", ""}},
		{name: "empty string", input: "", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAnswers(tt.input))
		})
	}
}

func TestToToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Token
	}{
		{
			name:  "integer",
			input: " 3 ",
			want:  Token{Original: "3", Normalized: "3", IsNumeric: true, Num: 3},
		},
		{
			name:  "fraction",
			input: "-1/2",
			want:  Token{Original: "-1/2", Normalized: "-1/2", IsNumeric: true, Num: -0.5},
		},
		{
			name:  "lettered expression",
			input: "2x",
			want:  Token{Original: "2x", Normalized: "2*x", HasLetter: true},
		},
		{
			name:  "zero denominator is not numeric",
			input: "1/0",
			want:  Token{Original: "1/0", Normalized: "1/0"},
		},
		{
			name:  "unicode minus is not a numeric literal",
			input: "−3",
			want:  Token{Original: "−3", Normalized: "-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToToken(tt.input))
		})
	}
}

func TestTokensEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "numeric equivalence", a: "0.5", b: "1/2", want: true},
		{name: "numeric difference", a: "0.5", b: "1/3", want: false},
		{name: "lettered normalized equality", a: "2x", b: "2*x", want: true},
		{name: "lettered never compared numerically", a: "2x+2x", b: "4x", want: false},
		{name: "letter against number", a: "x", b: "1", want: false},
		{name: "non numeric text by normalization", a: "−3", b: "-3", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokensEqual(ToToken(tt.a), ToToken(tt.b)))
		})
	}
}

func TestMatchMultiAnswers(t *testing.T) {
	tests := []struct {
		name    string
		user    []string
		correct []string
		want    bool
	}{
		{name: "same order", user: []string{"3", "-3"}, correct: []string{"3", "-3"}, want: true},
		{name: "any order", user: []string{"-3", "3"}, correct: []string{"3", "-3"}, want: true},
		{name: "mixed notation", user: []string{"0.5", " 2"}, correct: []string{"2", "1/2"}, want: true},
		{name: "duplicates must each be matched", user: []string{"2", "2"}, correct: []string{"2", "3"}, want: false},
		{name: "repeated correct values", user: []string{"2", "2"}, correct: []string{"2", "2"}, want: true},
		{name: "missing answer is not partial credit", user: []string{"3"}, correct: []string{"3", "-3"}, want: false},
		{name: "extra answer is rejected", user: []string{"3", "-3", "0"}, correct: []string{"3", "-3"}, want: false},
		{name: "wrong value", user: []string{"3", "4"}, correct: []string{"3", "-3"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchMultiAnswers(tt.user, tt.correct))
		})
	}
}

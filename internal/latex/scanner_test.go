package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBlock(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		start   int
		open    byte
		close   byte
		wantEnd int
		wantOK  bool
	}{
		{name: "simple group", s: "(x+1)", start: 0, open: '(', close: ')', wantEnd: 5, wantOK: true},
		{name: "nested groups", s: "((a)(b))c", start: 0, open: '(', close: ')', wantEnd: 8, wantOK: true},
		{name: "inner group", s: "((a)(b))c", start: 1, open: '(', close: ')', wantEnd: 4, wantOK: true},
		{name: "square brackets", s: "[3]x", start: 0, open: '[', close: ']', wantEnd: 3, wantOK: true},
		{name: "unterminated", s: "(x+(1)", start: 0, open: '(', close: ')', wantOK: false},
		{name: "start is not the opener", s: "x(1)", start: 0, open: '(', close: ')', wantOK: false},
		{name: "start out of range", s: "()", start: 5, open: '(', close: ')', wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotEnd, gotOK := MatchBlock(tt.s, tt.start, tt.open, tt.close)
			assert.Equal(t, tt.wantOK, gotOK)
			if tt.wantOK {
				assert.Equal(t, tt.wantEnd, gotEnd)
			}
		})
	}
}

func TestRightAtom(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		i        int
		want     Span
		wantOK   bool
		wantText string
	}{
		{name: "parenthesized group", s: "(x+1)+2", i: 0, want: Span{0, 5}, wantOK: true, wantText: "(x+1)"},
		{name: "curly group", s: "{ab}c", i: 0, want: Span{0, 4}, wantOK: true, wantText: "{ab}"},
		{name: "function call", s: "sqrt(x+1)*2", i: 0, want: Span{0, 9}, wantOK: true, wantText: "sqrt(x+1)"},
		{name: "bare function name", s: "sin x", i: 0, want: Span{0, 3}, wantOK: true, wantText: "sin"},
		{name: "latex command", s: `\pi+1`, i: 0, want: Span{0, 3}, wantOK: true, wantText: `\pi`},
		{name: "number with decimals", s: "2.5x", i: 0, want: Span{0, 3}, wantOK: true, wantText: "2.5"},
		{name: "skips leading spaces", s: "   x", i: 0, want: Span{3, 4}, wantOK: true, wantText: "x"},
		{name: "identifier with underscore", s: "_a1+b", i: 0, want: Span{0, 3}, wantOK: true, wantText: "_a1"},
		{name: "offset into the string", s: "2+y", i: 2, want: Span{2, 3}, wantOK: true, wantText: "y"},
		{name: "end of string", s: "x", i: 1, wantOK: false},
		{name: "unrecognized character", s: "+x", i: 0, wantOK: false},
		{name: "unterminated group", s: "(x+1", i: 0, wantOK: false},
		{name: "unterminated call", s: "sqrt(x", i: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RightAtom(tt.s, tt.i)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantText, tt.s[got.Start:got.End])
			assert.LessOrEqual(t, got.Start, got.End)
			assert.LessOrEqual(t, got.End, len(tt.s))
		})
	}
}

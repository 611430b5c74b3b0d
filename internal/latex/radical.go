package latex

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

var defaultRootIndex = map[rune]int{
	'√': 2,
	'∛': 3,
	'∜': 4,
}

// NormalizeRadicals rewrites radical symbols into sqrt(...) or nthRoot(..., n).
// An optional [n] right after the symbol overrides the default index. A symbol
// with no recognizable radicand is kept as is.
func NormalizeRadicals(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		defaultIndex, isRadical := defaultRootIndex[r]
		if !isRadical {
			b.WriteString(src[i : i+size])
			i += size
			continue
		}

		index := strconv.Itoa(defaultIndex)
		cursor := i + size
		if cursor < len(src) && src[cursor] == '[' {
			if end, ok := MatchBlock(src, cursor, '[', ']'); ok {
				if explicit := strings.TrimSpace(src[cursor+1 : end-1]); explicit != "" {
					index = explicit
				}
				cursor = end
			}
		}

		span, ok := RightAtom(src, cursor)
		if !ok {
			b.WriteRune(r)
			i += size
			continue
		}

		radicand := NormalizeRadicals(stripOuterGroup(src[span.Start:span.End]))
		if index == "2" {
			b.WriteString("sqrt(" + radicand + ")")
		} else {
			b.WriteString("nthRoot(" + radicand + ", " + index + ")")
		}
		i = span.End
	}

	return b.String()
}

// stripOuterGroup removes one pair of brackets when they enclose all of s.
func stripOuterGroup(s string) string {
	if s == "" {
		return s
	}
	closer, ok := closers[s[0]]
	if !ok {
		return s
	}
	if end, ok := MatchBlock(s, 0, s[0], closer); ok && end == len(s) {
		return s[1 : len(s)-1]
	}
	return s
}

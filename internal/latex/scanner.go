package latex

// Span is a half-open byte range [Start, End) into a source string.
type Span struct {
	Start int
	End   int
}

var closers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

// MatchBlock expects s[start] == open and returns the index one past the
// matching close. ok is false when the block is not terminated.
func MatchBlock(s string, start int, open, close byte) (end int, ok bool) {
	if start < 0 || start >= len(s) || s[start] != open {
		return 0, false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// RightAtom returns the span of the atom that starts at i after skipping
// whitespace: a bracketed group, a function-call-like name with its group, a
// name, a number or an identifier.
func RightAtom(s string, i int) (Span, bool) {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < 0 || i >= len(s) {
		return Span{}, false
	}

	c := s[i]
	switch {
	case closers[c] != 0:
		end, ok := MatchBlock(s, i, c, closers[c])
		if !ok {
			return Span{}, false
		}
		return Span{Start: i, End: end}, true

	case isLetter(c) || c == '\\':
		j := i + 1
		for j < len(s) && isLetter(s[j]) {
			j++
		}
		if j < len(s) && closers[s[j]] != 0 {
			end, ok := MatchBlock(s, j, s[j], closers[s[j]])
			if !ok {
				return Span{}, false
			}
			return Span{Start: i, End: end}, true
		}
		return Span{Start: i, End: j}, true

	case isDigit(c):
		j := i + 1
		for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
			j++
		}
		return Span{Start: i, End: j}, true

	case c == '_':
		j := i + 1
		for j < len(s) && (isLetter(s[j]) || isDigit(s[j]) || s[j] == '_') {
			j++
		}
		return Span{Start: i, End: j}, true
	}

	return Span{}, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

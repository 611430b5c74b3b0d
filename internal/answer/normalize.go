// Package answer decides whether a student's free-form answer is mathematically
// equivalent to a stored correct answer.
package answer

import (
	"regexp"
	"strings"
)

var (
	minusReplacer          = strings.NewReplacer("−", "-", "–", "-", "—", "-")
	multiplicationReplacer = strings.NewReplacer("·", "*", "×", "*")

	// 2x, 2(, )x, )(
	implicitMulBeforeLetterPattern = regexp.MustCompile(`([0-9)])([A-Za-z(])`)
	// x2, )2
	implicitMulBeforeDigitPattern = regexp.MustCompile(`([A-Za-z)])([0-9])`)

	letterPattern = regexp.MustCompile(`[A-Za-z]`)
)

// NormalizeLight canonicalizes symbols and whitespace and makes implicit
// multiplication explicit. It is idempotent.
func NormalizeLight(s string) string {
	s = strings.TrimSpace(s)
	s = minusReplacer.Replace(s)
	s = multiplicationReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), "")
	s = implicitMulBeforeLetterPattern.ReplaceAllString(s, "${1}*${2}")
	s = implicitMulBeforeDigitPattern.ReplaceAllString(s, "${1}*${2}")
	return s
}

func hasLetter(s string) bool {
	return letterPattern.MatchString(s)
}

package answer

import "strings"

// Token is one comma-separated part of an answer, classified for comparison.
// Num is meaningful only when IsNumeric is true.
type Token struct {
	Original   string
	Normalized string
	IsNumeric  bool
	HasLetter  bool
	Num        float64
}

// SplitAnswers splits s on commas. A string without a comma is returned as a
// single part.
func SplitAnswers(s string) []string {
	if !strings.Contains(s, ",") {
		return []string{s}
	}
	return strings.Split(s, ",")
}

// ToToken trims, normalizes and classifies a single answer part.
func ToToken(part string) Token {
	original := strings.TrimSpace(part)
	normalized := NormalizeLight(original)
	token := Token{
		Original:   original,
		Normalized: normalized,
		HasLetter:  hasLetter(normalized),
	}
	if num, ok := ParseNumericLiteral(original); ok {
		token.IsNumeric = true
		token.Num = num
	}
	return token
}

// TokensEqual compares two tokens. Lettered expressions are compared textually only.
func TokensEqual(a, b Token) bool {
	if a.HasLetter || b.HasLetter {
		return a.Normalized == b.Normalized || a.Original == b.Original
	}
	if a.IsNumeric && b.IsNumeric {
		return NearlyEqual(a.Num, b.Num)
	}
	return a.Normalized == b.Normalized
}

// MatchMultiAnswers reports whether userParts and correctParts hold the same
// answers in any order. Lists of different length never match, so a partially
// complete answer is rejected.
func MatchMultiAnswers(userParts, correctParts []string) bool {
	if len(userParts) != len(correctParts) {
		return false
	}

	userTokens := make([]Token, len(userParts))
	for i, part := range userParts {
		userTokens[i] = ToToken(part)
	}

	used := make([]bool, len(userTokens))
	for _, part := range correctParts {
		correct := ToToken(part)
		matched := false
		for i, user := range userTokens {
			if used[i] || !TokensEqual(user, correct) {
				continue
			}
			used[i] = true
			matched = true
			break
		}
		if !matched {
			return false
		}
	}
	return true
}

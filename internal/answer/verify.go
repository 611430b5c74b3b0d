package answer

import (
	"fmt"
	"log/slog"
	"strings"
)

// Verify reports whether userInputRaw is equivalent to answerRaw.
//
// Comparison stops at the first rule that decides the result: normalized string
// equality, order-independent matching when either side has several
// comma-separated answers, textual equality for lettered expressions, numeric
// equality within a relative tolerance, and finally raw string equality.
// Verify never panics; an unexpected failure is logged and reported as false.
func Verify(userInputRaw, answerRaw string) (correct bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Default().Error("answer verification failed",
				"input", userInputRaw,
				"answer", answerRaw,
				"error", fmt.Sprint(r),
			)
			correct = false
		}
	}()

	userInput := strings.TrimSpace(userInputRaw)
	answer := strings.TrimSpace(answerRaw)
	if userInput == "" || answer == "" {
		return false
	}

	normalizedInput := NormalizeLight(userInput)
	if normalizedInput == NormalizeLight(answer) {
		return true
	}

	userParts := SplitAnswers(userInput)
	correctParts := SplitAnswers(answer)
	if len(userParts) > 1 || len(correctParts) > 1 {
		return MatchMultiAnswers(userParts, correctParts)
	}

	candidate := strings.TrimSpace(correctParts[0])
	if hasLetter(userInput) || hasLetter(candidate) {
		return normalizedInput == NormalizeLight(candidate) || userInput == candidate
	}

	if IsNumericLiteralLike(userInput) && IsNumericLiteralLike(candidate) {
		userValue, userOK := ParseNumericLiteral(userInput)
		correctValue, correctOK := ParseNumericLiteral(candidate)
		if userOK && correctOK {
			return NearlyEqual(userValue, correctValue)
		}
	}

	return userInput == candidate
}

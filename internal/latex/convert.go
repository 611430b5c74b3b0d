// Package latex converts ASCII and unicode math notation typed by students or
// stored with problems into LaTeX source.
package latex

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	symbolReplacer = strings.NewReplacer(
		"π", "pi",
		"×", "*",
		"·", "*",
		"•", "*",
		"÷", "/",
		"−", "-",
		"–", "-",
		"—", "-",
	)

	digitBeforeLetterPattern = regexp.MustCompile(`([0-9])([A-Za-z(])`)
	letterBeforeDigitPattern = regexp.MustCompile(`([A-Za-z)])([0-9])`)
	closeParenBeforePattern  = regexp.MustCompile(`\)([A-Za-z(])`)
	nameBeforeParenPattern   = regexp.MustCompile(`[A-Za-z]+\(`)
)

// knownFunctions are names that must keep their call parenthesis.
var knownFunctions = map[string]bool{
	"sqrt":    true,
	"sin":     true,
	"cos":     true,
	"tan":     true,
	"log":     true,
	"ln":      true,
	"exp":     true,
	"nthRoot": true,
	"abs":     true,
}

// ASCIIToLatex converts input into LaTeX. A comma always separates multiple
// answers; each non-empty part is converted on its own and the results are
// joined with ", ".
func ASCIIToLatex(input string) string {
	if !strings.Contains(input, ",") {
		return convertPart(input)
	}

	var converted []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		converted = append(converted, convertPart(part))
	}
	return strings.Join(converted, ", ")
}

func convertPart(part string) string {
	friendly := toMathFriendly(part)
	tex, err := Render(friendly)
	if err != nil {
		slog.Default().Debug("failed to render expression",
			"input", part,
			"normalized", friendly,
			"error", err,
		)
		return part
	}
	return strings.ReplaceAll(tex, `\cdot`, `\times`)
}

// toMathFriendly rewrites symbols, radicals and implicit multiplication into
// the syntax accepted by Render.
func toMathFriendly(s string) string {
	s = symbolReplacer.Replace(s)
	s = NormalizeRadicals(s)
	s = digitBeforeLetterPattern.ReplaceAllString(s, "${1}*${2}")
	s = letterBeforeDigitPattern.ReplaceAllString(s, "${1}*${2}")
	s = closeParenBeforePattern.ReplaceAllString(s, ")*${1}")
	s = nameBeforeParenPattern.ReplaceAllStringFunc(s, func(m string) string {
		name := strings.TrimSuffix(m, "(")
		if knownFunctions[name] {
			return m
		}
		return name + "*("
	})
	return strings.TrimSpace(s)
}

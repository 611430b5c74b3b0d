package linear

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/at-ishikawa/mathgrade/internal/answer"
)

// ReasonParseFailure is reported when the equation is not a solvable linear equation.
const ReasonParseFailure = "해당 문제는 일차방정식 파싱 실패"

// Problem is a generated or stored equation problem.
// Question2, when set, is the solvable form of a decorated Question.
type Problem struct {
	Question  string `json:"question" yaml:"question"`
	Question2 string `json:"question2,omitempty" yaml:"question2,omitempty"`
	Answer    string `json:"answer" yaml:"answer"`
}

// ValidationResult tells whether a problem's answer solves its equation.
// Reason is only set when IsValid is false.
type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason,omitempty"`
}

// Validator checks linear-equation problems. It holds no state.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate solves the problem's equation and compares the solution with the
// stated answer, which may be written as "5" or "x=5".
func (v *Validator) Validate(problem Problem, unitName string) ValidationResult {
	equation := problem.Question
	if strings.TrimSpace(problem.Question2) != "" {
		equation = problem.Question2
	}

	solved, ok := TrySolve(equation)
	if !ok {
		slog.Default().Debug("rejected equation problem",
			"unit", unitName,
			"question", equation,
			"reason", ReasonParseFailure,
		)
		return ValidationResult{IsValid: false, Reason: ReasonParseFailure}
	}

	expected := normalizeExpectedAnswer(problem.Answer)
	var isValid bool
	if value, ok := answer.ParseNumericLiteral(expected); ok {
		isValid = answer.NearlyEqual(value, solved)
	} else {
		isValid = expected == formatNumber(solved)
	}
	if isValid {
		return ValidationResult{IsValid: true}
	}

	reason := fmt.Sprintf("정답 불일치: 기대값=%s, 계산값=%s", problem.Answer, formatNumber(solved))
	slog.Default().Debug("rejected equation problem",
		"unit", unitName,
		"question", equation,
		"reason", reason,
	)
	return ValidationResult{IsValid: false, Reason: reason}
}

func normalizeExpectedAnswer(s string) string {
	s = strings.Join(strings.Fields(s), "")
	if len(s) >= 2 && (s[0] == 'x' || s[0] == 'X') && s[1] == '=' {
		s = s[2:]
	}
	return s
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

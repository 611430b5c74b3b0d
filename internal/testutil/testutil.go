// Package testutil provides shared test helpers for creating config files and problem-set fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/mathgrade/internal/linear"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
)

// SetupTestConfig creates a minimal config file and all required directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"problems", "worksheets"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`grading:
  concurrency: 2
problems:
  directory: %s
outputs:
  worksheet_directory: %s
`,
		filepath.Join(tmpDir, "problems"),
		filepath.Join(tmpDir, "worksheets"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key for tests
// that require API key validation to pass.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// ProblemSetOption configures the problems written by CreateProblemSet.
type ProblemSetOption func(*problemset.Set)

// WithProblems replaces the default problems.
func WithProblems(problems ...linear.Problem) ProblemSetOption {
	return func(set *problemset.Set) {
		set.Problems = problems
	}
}

// WithUnit sets the unit name.
func WithUnit(unit string) ProblemSetOption {
	return func(set *problemset.Set) {
		set.Unit = unit
	}
}

// CreateProblemSet writes a problem-set YAML file named name into dir and returns its path.
// By default it holds two valid linear equations of the unit "일차방정식".
func CreateProblemSet(t *testing.T, dir, name string, opts ...ProblemSetOption) string {
	t.Helper()

	set := problemset.Set{
		Unit: "일차방정식",
		Problems: []linear.Problem{
			{Question: "2x+3=7", Answer: "2"},
			{Question: "다음 방정식을 푸시오", Question2: "3(x-1)=2x+5", Answer: "x=8"},
		},
	}
	for _, opt := range opts {
		opt(&set)
	}

	path := filepath.Join(dir, name)
	require.NoError(t, problemset.Write(path, set))
	return path
}

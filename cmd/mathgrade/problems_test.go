package main

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/mathgrade/internal/linear"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
	"github.com/at-ishikawa/mathgrade/internal/solve"
	"github.com/at-ishikawa/mathgrade/internal/statistics"
)

func TestToProblemRecords(t *testing.T) {
	set := problemset.Set{
		Unit: "일차방정식",
		Problems: []linear.Problem{
			{Question: "2x+3=7", Answer: "2"},
			{Question: "2x+3=7", Answer: "3"},
			{Question: "다음 방정식을 푸시오", Question2: "x/2=3", Answer: "6"},
		},
	}

	tests := []struct {
		name        string
		skipInvalid bool
		want        []*solve.Problem
	}{
		{
			name: "keeps every problem",
			want: []*solve.Problem{
				{UnitName: "일차방정식", Question: "2x+3=7", Answer: "2"},
				{UnitName: "일차방정식", Question: "2x+3=7", Answer: "3"},
				{UnitName: "일차방정식", Question: "다음 방정식을 푸시오", Question2: sql.NullString{String: "x/2=3", Valid: true}, Answer: "6"},
			},
		},
		{
			name:        "skips invalid problems",
			skipInvalid: true,
			want: []*solve.Problem{
				{UnitName: "일차방정식", Question: "2x+3=7", Answer: "2"},
				{UnitName: "일차방정식", Question: "다음 방정식을 푸시오", Question2: sql.NullString{String: "x/2=3", Valid: true}, Answer: "6"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toProblemRecords(linear.NewValidator(), set, tt.skipInvalid)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplaySolves(t *testing.T) {
	solvedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		solves []solve.Solve
		want   []string
	}{
		{
			name: "no solves",
			want: []string{"No solves recorded"},
		},
		{
			name: "correct and incorrect solves",
			solves: []solve.Solve{
				{ProblemID: 3, UserInput: "2", IsCorrect: true, SolvedAt: solvedAt},
				{ProblemID: 4, UserInput: "x=1", IsCorrect: false, SolvedAt: solvedAt},
			},
			want: []string{
				`✅ 2025-03-01 09:30 problem=3 input="2"`,
				`❌ 2025-03-01 09:30 problem=4 input="x=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, displaySolves(&buf, tt.solves))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestProblemsHistoryCommand_InvalidUserID(t *testing.T) {
	_, err := executeCommand(t, "problems", "history", "abc")
	assert.EqualError(t, err, "invalid user id: abc")
}

func TestProblemsReportCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "month without year",
			args:    []string{"problems", "report", "1", "--month", "3"},
			wantErr: "--month requires --year to be specified",
		},
		{
			name:    "month out of range",
			args:    []string{"problems", "report", "1", "--year", "2025", "--month", "13"},
			wantErr: "--month must be between 1 and 12",
		},
		{
			name:    "invalid user id",
			args:    []string{"problems", "report", "0"},
			wantErr: "invalid user id: 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestDisplayReport(t *testing.T) {
	tests := []struct {
		name   string
		result statistics.StatisticsResult
		want   string
	}{
		{
			name: "no periods",
			want: "No solves recorded\n",
		},
		{
			name: "one period",
			result: statistics.StatisticsResult{
				Periods: []statistics.PeriodStatistics{
					{Period: "2025-03", Attempts: 4, Correct: 3, UniqueProblems: 2, NewlySolved: 2},
				},
				Aggregate: statistics.AggregateStatistics{Attempts: 4, Correct: 3, UniqueProblems: 2, NewlySolved: 2},
			},
			want: "2025-03: 3/4 correct (75%), 2 problem(s), 2 newly solved\n" +
				"Total: 3/4 correct, 2 problem(s), 2 newly solved\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, displayReport(&buf, tt.result))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

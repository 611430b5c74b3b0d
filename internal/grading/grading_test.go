package grading

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeAll(t *testing.T) {
	submissions := []Submission{
		{ID: "a", UserInput: "0.5", Answer: "1/2"},
		{ID: "b", UserInput: "3,-2", Answer: "-2,3"},
		{ID: "c", UserInput: "x+1", Answer: "1+x"},
		{ID: "d", UserInput: "", Answer: "2"},
		{ID: "e", UserInput: "√2", Answer: "sqrt(2)"},
		{ID: "f", UserInput: "2·x", Answer: "2x"},
	}
	want := []Result{
		{ID: "a", Correct: true},
		{ID: "b", Correct: true},
		{ID: "c", Correct: false},
		{ID: "d", Correct: false},
		{ID: "e", Correct: false},
		{ID: "f", Correct: true},
	}

	tests := []struct {
		name        string
		concurrency int
	}{
		{name: "sequential", concurrency: 1},
		{name: "bounded", concurrency: 3},
		{name: "more workers than submissions", concurrency: 16},
		{name: "zero treated as one", concurrency: 0},
		{name: "negative treated as one", concurrency: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GradeAll(context.Background(), submissions, tt.concurrency)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestGradeAll_PreservesOrderForLargeBatches(t *testing.T) {
	var submissions []Submission
	for i := 0; i < 200; i++ {
		submissions = append(submissions, Submission{
			ID:        fmt.Sprintf("s%03d", i),
			UserInput: fmt.Sprintf("%d", i),
			Answer:    fmt.Sprintf("%d", i%2*i),
		})
	}

	got, err := GradeAll(context.Background(), submissions, 8)
	require.NoError(t, err)
	require.Len(t, got, len(submissions))
	for i, r := range got {
		assert.Equal(t, submissions[i].ID, r.ID)
		assert.Equal(t, i%2 == 1 || i == 0, r.Correct, "submission %d", i)
	}
}

func TestGradeAll_Empty(t *testing.T) {
	got, err := GradeAll(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGradeAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := GradeAll(ctx, []Submission{{ID: "a", UserInput: "1", Answer: "1"}}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestSummary(t *testing.T) {
	correct, total := Summary([]Result{
		{ID: "a", Correct: true},
		{ID: "b", Correct: false},
		{ID: "c", Correct: true},
	})
	assert.Equal(t, 2, correct)
	assert.Equal(t, 3, total)
}

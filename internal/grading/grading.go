// Package grading verifies many submissions concurrently.
package grading

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/mathgrade/internal/answer"
)

// Submission is a single learner answer to grade.
type Submission struct {
	ID        string `yaml:"id" json:"id"`
	UserInput string `yaml:"user_input" json:"user_input"`
	Answer    string `yaml:"answer" json:"answer"`
}

// Result is the verdict for one Submission.
type Result struct {
	ID      string `yaml:"id" json:"id"`
	Correct bool   `yaml:"correct" json:"correct"`
}

// GradeAll grades submissions with at most concurrency workers.
// Results are in the same order as submissions.
func GradeAll(ctx context.Context, submissions []Submission, concurrency int) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(submissions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, s := range submissions {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{
				ID:      s.ID,
				Correct: answer.Verify(s.UserInput, s.Answer),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary counts correct results.
func Summary(results []Result) (correct, total int) {
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	return correct, len(results)
}

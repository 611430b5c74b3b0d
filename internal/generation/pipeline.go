// Package generation asks an inference client for new problems and keeps only
// the ones whose stated answer actually solves the equation.
package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/at-ishikawa/mathgrade/internal/inference"
	"github.com/at-ishikawa/mathgrade/internal/linear"
)

// Rejection is a generated problem that failed validation.
type Rejection struct {
	Problem linear.Problem
	Reason  string
}

// Batch is the outcome of one generation run.
type Batch struct {
	ID         string
	UnitName   string
	Accepted   []linear.Problem
	Rejections []Rejection
}

// Pipeline generates problems and filters them with a linear.Validator.
type Pipeline struct {
	client    inference.Client
	validator *linear.Validator
	newID     func() string
}

// NewPipeline creates a new Pipeline.
func NewPipeline(client inference.Client, validator *linear.Validator) *Pipeline {
	return &Pipeline{
		client:    client,
		validator: validator,
		newID:     func() string { return uuid.NewString() },
	}
}

// Run generates count problems for unitName and validates each one.
func (p *Pipeline) Run(ctx context.Context, unitName string, count int) (Batch, error) {
	batch := Batch{
		ID:       p.newID(),
		UnitName: unitName,
	}

	response, err := p.client.GenerateProblems(ctx, inference.GenerateProblemsRequest{
		UnitName: unitName,
		Count:    count,
	})
	if err != nil {
		return batch, fmt.Errorf("client.GenerateProblems() > %w", err)
	}

	for _, generated := range response.Problems {
		problem := linear.Problem{
			Question:  generated.Question,
			Question2: generated.Question2,
			Answer:    generated.Answer,
		}
		result := p.validator.Validate(problem, unitName)
		if !result.IsValid {
			slog.Default().Info("generated problem rejected",
				"batch", batch.ID,
				"unit", unitName,
				"question", problem.Question,
				"reason", result.Reason,
			)
			batch.Rejections = append(batch.Rejections, Rejection{
				Problem: problem,
				Reason:  result.Reason,
			})
			continue
		}
		batch.Accepted = append(batch.Accepted, problem)
	}
	return batch, nil
}

package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	GenerateProblems(ctx context.Context, params GenerateProblemsRequest) (GenerateProblemsResponse, error)
}

// GenerateProblemsRequest holds parameters for generating problems of a unit
type GenerateProblemsRequest struct {
	UnitName string `json:"unit_name"`
	Count    int    `json:"count"`
}

type GenerateProblemsResponse struct {
	Problems []GeneratedProblem
}

// GeneratedProblem is a single problem proposed by the model.
// Question2 holds the bare equation when Question is a sentence.
type GeneratedProblem struct {
	Question  string `json:"question"`
	Question2 string `json:"question2,omitempty"`
	Answer    string `json:"answer"`
}

const (
	DefaultMaxRetryAttempts = 3
)

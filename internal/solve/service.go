package solve

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/mathgrade/internal/answer"
)

// Result is the outcome of a graded submission.
type Result struct {
	SolveID int64
	Correct bool
}

// Service grades submissions against stored problems and records them.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Submit grades userInput against the stored answer of problemID and persists the attempt.
func (s *Service) Submit(ctx context.Context, userID, problemID int64, userInput string) (Result, error) {
	problem, err := s.repo.FindProblem(ctx, problemID)
	if err != nil {
		return Result{}, fmt.Errorf("repo.FindProblem() > %w", err)
	}

	record := &Solve{
		UserID:    userID,
		ProblemID: problem.ID,
		UserInput: userInput,
		IsCorrect: answer.Verify(userInput, problem.Answer),
		SolvedAt:  s.now().UTC(),
	}
	if err := s.repo.CreateSolve(ctx, record); err != nil {
		return Result{}, fmt.Errorf("repo.CreateSolve() > %w", err)
	}

	return Result{
		SolveID: record.ID,
		Correct: record.IsCorrect,
	}, nil
}

// History returns the recorded solves of a user.
func (s *Service) History(ctx context.Context, userID int64) ([]Solve, error) {
	solves, err := s.repo.FindSolvesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindSolvesByUser() > %w", err)
	}
	return solves, nil
}

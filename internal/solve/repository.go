package solve

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/mathgrade/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/solve/mock_repository.go -package=mock_solve

// Repository defines persistence operations for problems and solves.
type Repository interface {
	FindProblem(ctx context.Context, id int64) (*Problem, error)
	BatchCreateProblems(ctx context.Context, problems []*Problem) error
	CreateSolve(ctx context.Context, s *Solve) error
	FindSolvesByUser(ctx context.Context, userID int64) ([]Solve, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindProblem returns the problem with the given ID, or ErrProblemNotFound.
func (r *DBRepository) FindProblem(ctx context.Context, id int64) (*Problem, error) {
	var p Problem
	if err := r.db.GetContext(ctx, &p, "SELECT * FROM problems WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find problem %d: %w", id, ErrProblemNotFound)
		}
		return nil, fmt.Errorf("find problem %d: %w", id, err)
	}
	return &p, nil
}

// BatchCreateProblems inserts problems in a single transaction and assigns their IDs.
func (r *DBRepository) BatchCreateProblems(ctx context.Context, problems []*Problem) error {
	if len(problems) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := buildMultiRowInsert("problems", []string{"unit_name", "question", "question2", "answer"}, len(problems))
		var args []interface{}
		for _, p := range problems {
			args = append(args, p.UnitName, p.Question, p.Question2, p.Answer)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("insert problems: %w", err)
		}
		// Multi-row inserts get consecutive auto-increment IDs under the default lock mode.
		firstID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get problems insert ID: %w", err)
		}
		for i := range problems {
			problems[i].ID = firstID + int64(i)
		}
		return nil
	})
}

// CreateSolve inserts a solve and sets its ID.
func (r *DBRepository) CreateSolve(ctx context.Context, s *Solve) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO solves (user_id, problem_id, user_input, is_correct, solved_at) VALUES (?, ?, ?, ?, ?)",
		s.UserID, s.ProblemID, s.UserInput, s.IsCorrect, s.SolvedAt)
	if err != nil {
		return fmt.Errorf("insert solve: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get solve insert ID: %w", err)
	}
	s.ID = id
	return nil
}

// FindSolvesByUser returns a user's solves, newest first.
func (r *DBRepository) FindSolvesByUser(ctx context.Context, userID int64) ([]Solve, error) {
	var solves []Solve
	if err := r.db.SelectContext(ctx, &solves,
		"SELECT * FROM solves WHERE user_id = ? ORDER BY solved_at DESC, id DESC", userID); err != nil {
		return nil, fmt.Errorf("load solves for user %d: %w", userID, err)
	}
	return solves, nil
}

func buildMultiRowInsert(table string, columns []string, rowCount int) string {
	placeholder := "(" + strings.Repeat("?, ", len(columns)-1) + "?)"
	values := strings.Repeat(placeholder+", ", rowCount-1) + placeholder
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), values)
}

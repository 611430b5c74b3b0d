// Package solve records learner attempts at stored problems and grades them.
package solve

import (
	"database/sql"
	"errors"
	"time"
)

// ErrProblemNotFound is returned when a problem ID does not exist.
var ErrProblemNotFound = errors.New("problem not found")

// Problem represents a row in the problems table.
type Problem struct {
	ID        int64          `db:"id"`
	UnitName  string         `db:"unit_name"`
	Question  string         `db:"question"`
	Question2 sql.NullString `db:"question2"`
	Answer    string         `db:"answer"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// Solve represents a row in the solves table.
type Solve struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	ProblemID int64     `db:"problem_id"`
	UserInput string    `db:"user_input"`
	IsCorrect bool      `db:"is_correct"`
	SolvedAt  time.Time `db:"solved_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

package main

import (
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/linear"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
	"github.com/at-ishikawa/mathgrade/internal/solve"
	"github.com/at-ishikawa/mathgrade/internal/statistics"
)

func newProblemsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "problems",
		Short: "Manage stored problems and solves",
	}
	command.AddCommand(
		newProblemsImportCommand(),
		newProblemsHistoryCommand(),
		newProblemsReportCommand(),
	)
	return command
}

func newProblemsImportCommand() *cobra.Command {
	var skipInvalid bool

	command := &cobra.Command{
		Use:   "import <file>...",
		Short: "Store problem sets in the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []*solve.Problem
			validator := linear.NewValidator()
			for _, path := range args {
				set, err := problemset.Load(path)
				if err != nil {
					return fmt.Errorf("problemset.Load() > %w", err)
				}
				records = append(records, toProblemRecords(validator, set, skipInvalid)...)
			}
			if len(records) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No problems to import")
				return err
			}

			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := solve.NewDBRepository(db).BatchCreateProblems(cmd.Context(), records); err != nil {
				return fmt.Errorf("BatchCreateProblems() > %w", err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d problem(s), IDs %d-%d\n",
				len(records), records[0].ID, records[len(records)-1].ID); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "skip problems whose answer does not solve the equation")

	return command
}

func toProblemRecords(validator *linear.Validator, set problemset.Set, skipInvalid bool) []*solve.Problem {
	records := make([]*solve.Problem, 0, len(set.Problems))
	for _, p := range set.Problems {
		if skipInvalid && !validator.Validate(p, set.Unit).IsValid {
			continue
		}
		question2 := sql.NullString{String: p.Question2, Valid: strings.TrimSpace(p.Question2) != ""}
		records = append(records, &solve.Problem{
			UnitName:  set.Unit,
			Question:  p.Question,
			Question2: question2,
			Answer:    p.Answer,
		})
	}
	return records
}

func newProblemsHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <user-id>",
		Short: "Show a user's recorded solves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solves, err := loadHistory(cmd, args[0])
			if err != nil {
				return err
			}
			return displaySolves(cmd.OutOrStdout(), solves)
		},
	}
}

func newProblemsReportCommand() *cobra.Command {
	var year, month int

	command := &cobra.Command{
		Use:   "report <user-id>",
		Short: "Show monthly accuracy of a user's solves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			solves, err := loadHistory(cmd, args[0])
			if err != nil {
				return err
			}
			return displayReport(cmd.OutOrStdout(), statistics.CalculateStatistics(solves, year, month))
		},
	}
	command.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	command.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")

	return command
}

func loadHistory(cmd *cobra.Command, rawUserID string) ([]solve.Solve, error) {
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("invalid user id: %s", rawUserID)
	}

	db, err := openDatabase()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	solves, err := solve.NewService(solve.NewDBRepository(db)).History(cmd.Context(), userID)
	if err != nil {
		return nil, fmt.Errorf("History() > %w", err)
	}
	return solves, nil
}

func displayReport(w io.Writer, result statistics.StatisticsResult) error {
	if len(result.Periods) == 0 {
		_, err := fmt.Fprintln(w, "No solves recorded")
		return err
	}
	for _, p := range result.Periods {
		if _, err := fmt.Fprintf(w, "%s: %d/%d correct (%.0f%%), %d problem(s), %d newly solved\n",
			p.Period, p.Correct, p.Attempts, p.Accuracy()*100, p.UniqueProblems, p.NewlySolved); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	a := result.Aggregate
	if _, err := fmt.Fprintf(w, "Total: %d/%d correct, %d problem(s), %d newly solved\n",
		a.Correct, a.Attempts, a.UniqueProblems, a.NewlySolved); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func displaySolves(w io.Writer, solves []solve.Solve) error {
	if len(solves) == 0 {
		_, err := fmt.Fprintln(w, "No solves recorded")
		return err
	}
	for _, s := range solves {
		mark := "❌"
		if s.IsCorrect {
			mark = "✅"
		}
		if _, err := fmt.Fprintf(w, "%s %s problem=%d input=%q\n",
			mark, s.SolvedAt.Format("2006-01-02 15:04"), s.ProblemID, s.UserInput); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/answer"
	"github.com/at-ishikawa/mathgrade/internal/grading"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
)

func newVerifyCommand() *cobra.Command {
	var submissionsFile string

	command := &cobra.Command{
		Use:   "verify [user-input answer]",
		Short: "Check whether answers match the expected answers",
		Example: `  mathgrade verify "0.5" "1/2"
  mathgrade verify --file submissions.yml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if submissionsFile != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if submissionsFile == "" {
				return displayVerdict(cmd.OutOrStdout(), answer.Verify(args[0], args[1]))
			}

			submissions, err := problemset.LoadSubmissions(submissionsFile)
			if err != nil {
				return fmt.Errorf("problemset.LoadSubmissions() > %w", err)
			}
			if len(submissions) == 0 {
				return errors.New("no submissions to grade")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			results, err := grading.GradeAll(cmd.Context(), submissions, cfg.Grading.Concurrency)
			if err != nil {
				return fmt.Errorf("grading.GradeAll() > %w", err)
			}
			return displayGradingResults(cmd.OutOrStdout(), submissions, results)
		},
	}
	command.Flags().StringVarP(&submissionsFile, "file", "f", "", "YAML file of submissions to grade")

	return command
}

func displayVerdict(w io.Writer, correct bool) error {
	if correct {
		if _, err := color.New(color.FgGreen).Fprintln(w, "✅ correct"); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}
	if _, err := color.New(color.FgRed).Fprintln(w, "❌ incorrect"); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func displayGradingResults(w io.Writer, submissions []grading.Submission, results []grading.Result) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for i, r := range results {
		s := submissions[i]
		var err error
		if r.Correct {
			_, err = green.Fprintf(w, "✅ %s: %q = %q\n", r.ID, s.UserInput, s.Answer)
		} else {
			_, err = red.Fprintf(w, "❌ %s: %q ≠ %q\n", r.ID, s.UserInput, s.Answer)
		}
		if err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	correct, total := grading.Summary(results)
	if _, err := fmt.Fprintf(w, "\n%d/%d correct\n", correct, total); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

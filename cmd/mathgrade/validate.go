package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/linear"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
)

type problemValidation struct {
	Problem linear.Problem
	Result  linear.ValidationResult
}

func newValidateCommand() *cobra.Command {
	var file string

	command := &cobra.Command{
		Use:   "validate",
		Short: "Check that every linear-equation problem in a set is solved by its answer",
		Long:  "Validate the problem set given by --file, or every set under problems.directory when --file is omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := loadSetsToValidate(file)
			if err != nil {
				return err
			}

			validator := linear.NewValidator()
			var invalid int
			for _, set := range sets {
				n, err := displayValidationResults(cmd.OutOrStdout(), set.Unit, validateSet(validator, set))
				if err != nil {
					return err
				}
				invalid += n
			}
			if invalid > 0 {
				return fmt.Errorf("validation failed with %d invalid problem(s)", invalid)
			}
			return nil
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "problem set YAML file")

	return command
}

func loadSetsToValidate(file string) ([]problemset.Set, error) {
	if file != "" {
		set, err := problemset.Load(file)
		if err != nil {
			return nil, fmt.Errorf("problemset.Load() > %w", err)
		}
		return []problemset.Set{set}, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	sets, err := problemset.LoadDir(cfg.Problems.Directory)
	if err != nil {
		return nil, fmt.Errorf("problemset.LoadDir() > %w", err)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no problem sets found in %s", cfg.Problems.Directory)
	}
	return sets, nil
}

func validateSet(validator *linear.Validator, set problemset.Set) []problemValidation {
	validations := make([]problemValidation, 0, len(set.Problems))
	for _, p := range set.Problems {
		validations = append(validations, problemValidation{
			Problem: p,
			Result:  validator.Validate(p, set.Unit),
		})
	}
	return validations
}

func displayValidationResults(w io.Writer, unit string, validations []problemValidation) (int, error) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if _, err := fmt.Fprintf(w, "%s (%d problems)\n", unit, len(validations)); err != nil {
		return 0, fmt.Errorf("failed to write to stdout: %w", err)
	}

	var invalid int
	for i, v := range validations {
		question := displayQuestion(v.Problem)
		var err error
		if v.Result.IsValid {
			_, err = green.Fprintf(w, "  ✓ %d. %s (answer: %s)\n", i+1, question, v.Problem.Answer)
		} else {
			invalid++
			_, err = red.Fprintf(w, "  ✗ %d. %s: %s\n", i+1, question, v.Result.Reason)
		}
		if err != nil {
			return invalid, fmt.Errorf("failed to write to stdout: %w", err)
		}
	}

	if invalid == 0 {
		if _, err := fmt.Fprintln(w, "All problems are valid!"); err != nil {
			return 0, fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return invalid, nil
}

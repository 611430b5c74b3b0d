package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/generation"
	"github.com/at-ishikawa/mathgrade/internal/inference"
	"github.com/at-ishikawa/mathgrade/internal/inference/openai"
	"github.com/at-ishikawa/mathgrade/internal/linear"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
)

func newGenerateCommand() *cobra.Command {
	var (
		unit   string
		count  int
		output string
	)

	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate problems with OpenAI and keep the ones whose answers check out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive: %d", count)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.OpenAI.APIKey == "" {
				return errors.New("OPENAI_API_KEY environment variable is required")
			}

			client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, inference.DefaultMaxRetryAttempts)
			defer func() {
				_ = client.Close()
			}()

			batch, err := generation.NewPipeline(client, linear.NewValidator()).Run(cmd.Context(), unit, count)
			if err != nil {
				return fmt.Errorf("pipeline.Run() > %w", err)
			}
			if err := displayBatch(cmd.OutOrStdout(), batch); err != nil {
				return err
			}

			if output == "" || len(batch.Accepted) == 0 {
				return nil
			}
			if err := problemset.Write(output, problemset.Set{Unit: unit, Problems: batch.Accepted}); err != nil {
				return fmt.Errorf("problemset.Write() > %w", err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d problem(s) to %s\n", len(batch.Accepted), output); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}
			return nil
		},
	}
	command.Flags().StringVar(&unit, "unit", "일차방정식", "unit name to generate problems for")
	command.Flags().IntVar(&count, "count", 10, "number of problems to request")
	command.Flags().StringVarP(&output, "out", "o", "", "write accepted problems to this YAML file")

	return command
}

func displayBatch(w io.Writer, batch generation.Batch) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if _, err := fmt.Fprintf(w, "Batch %s: %d accepted, %d rejected\n",
		batch.ID, len(batch.Accepted), len(batch.Rejections)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	for _, p := range batch.Accepted {
		if _, err := green.Fprintf(w, "  ✓ %s = %s\n", displayQuestion(p), p.Answer); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	for _, r := range batch.Rejections {
		if _, err := red.Fprintf(w, "  ✗ %s: %s\n", displayQuestion(r.Problem), r.Reason); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}

func displayQuestion(p linear.Problem) string {
	if p.Question2 != "" {
		return p.Question2
	}
	return p.Question
}

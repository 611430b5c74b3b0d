package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/pdf"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
	"github.com/at-ishikawa/mathgrade/internal/worksheet"
)

func newWorksheetCommand() *cobra.Command {
	var (
		file        string
		withAnswers bool
		toPDF       bool
	)

	command := &cobra.Command{
		Use:   "worksheet",
		Short: "Render a problem set as a printable markdown worksheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			set, err := problemset.Load(file)
			if err != nil {
				return fmt.Errorf("problemset.Load() > %w", err)
			}

			content, err := worksheet.NewBuilder(cfg.Templates.WorksheetTemplate).Build(set, withAnswers)
			if err != nil {
				return fmt.Errorf("worksheet.Build() > %w", err)
			}

			outputDir := cfg.Outputs.WorksheetDirectory
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
			}
			markdownPath := filepath.Join(outputDir, worksheet.FileName(set.Unit, withAnswers))
			if err := os.WriteFile(markdownPath, []byte(content), 0o644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", markdownPath); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}

			if !toPDF {
				return nil
			}
			pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", pdfPath); err != nil {
				return fmt.Errorf("failed to write to stdout: %w", err)
			}
			return nil
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "problem set YAML file")
	command.Flags().BoolVar(&withAnswers, "answers", false, "include answers")
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the worksheet to PDF")
	_ = command.MarkFlagRequired("file")

	return command
}

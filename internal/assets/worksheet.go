package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

const worksheetTemplateName = "worksheet.md.go.tmpl"

//go:embed templates/worksheet.md.go.tmpl
var fallbackWorksheetTemplate string

// WorksheetTemplate is the data passed to worksheet templates
type WorksheetTemplate struct {
	Unit        string
	Date        time.Time
	WithAnswers bool
	Items       []WorksheetItem
}

// WorksheetItem is one problem. Math fields hold LaTeX without the $ delimiters.
type WorksheetItem struct {
	Prompt       string
	QuestionMath string
	AnswerMath   string
}

func WriteWorksheet(output io.Writer, templatePath string, templateData WorksheetTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, worksheetTemplateName, fallbackWorksheetTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

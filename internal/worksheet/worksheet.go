// Package worksheet renders problem sets as printable markdown worksheets.
package worksheet

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/at-ishikawa/mathgrade/internal/assets"
	"github.com/at-ishikawa/mathgrade/internal/latex"
	"github.com/at-ishikawa/mathgrade/internal/problemset"
)

// Builder renders worksheets with an optional custom template.
type Builder struct {
	templatePath string
	now          func() time.Time
}

// NewBuilder creates a Builder. An empty or unreadable templatePath uses the embedded template.
func NewBuilder(templatePath string) *Builder {
	return &Builder{
		templatePath: templatePath,
		now:          time.Now,
	}
}

// Build renders set with the embedded template.
func Build(set problemset.Set, withAnswers bool) (string, error) {
	return NewBuilder("").Build(set, withAnswers)
}

// Build renders set as markdown, with answers when withAnswers is set.
func (b *Builder) Build(set problemset.Set, withAnswers bool) (string, error) {
	data := assets.WorksheetTemplate{
		Unit:        set.Unit,
		Date:        b.now(),
		WithAnswers: withAnswers,
		Items:       make([]assets.WorksheetItem, 0, len(set.Problems)),
	}
	for _, p := range set.Problems {
		item := assets.WorksheetItem{
			QuestionMath: latex.ASCIIToLatex(p.Question),
			AnswerMath:   latex.ASCIIToLatex(p.Answer),
		}
		if strings.TrimSpace(p.Question2) != "" {
			item.Prompt = strings.TrimSpace(p.Question)
			item.QuestionMath = latex.ASCIIToLatex(p.Question2)
		}
		data.Items = append(data.Items, item)
	}

	var buf bytes.Buffer
	if err := assets.WriteWorksheet(&buf, b.templatePath, data); err != nil {
		return "", fmt.Errorf("assets.WriteWorksheet() > %w", err)
	}
	return buf.String(), nil
}

// FileName returns the markdown file name for a unit's worksheet.
func FileName(unit string, withAnswers bool) string {
	name := strings.Join(strings.Fields(unit), "-")
	if name == "" {
		name = "worksheet"
	}
	if withAnswers {
		name += "-answers"
	}
	return name + ".md"
}

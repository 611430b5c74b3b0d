package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name          string
		markdownPath  string
		setupFile     func(t *testing.T) string
		wantErr       bool
		wantErrMsg    string
		validateAfter func(t *testing.T, pdfPath string)
	}{
		{
			name:         "invalid extension",
			markdownPath: "worksheet.txt",
			wantErr:      true,
			wantErrMsg:   "input file must have .md extension",
		},
		{
			name:         "file not found",
			markdownPath: "nonexistent.md",
			wantErr:      true,
			wantErrMsg:   "os.ReadFile",
		},
		{
			name: "successful conversion",
			setupFile: func(t *testing.T) string {
				mdPath := filepath.Join(t.TempDir(), "linear-equations.md")
				content := []byte("# Linear equations\n\n1. $2x + 3 = 7$\n\n2. $x/2 = 3$\n")
				require.NoError(t, os.WriteFile(mdPath, content, 0o644))
				return mdPath
			},
			validateAfter: func(t *testing.T, pdfPath string) {
				info, err := os.Stat(pdfPath)
				require.NoError(t, err, "PDF file should be created")
				assert.Greater(t, info.Size(), int64(0))
				assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
				assert.True(t, filepath.IsAbs(pdfPath))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mdPath := tt.markdownPath
			if tt.setupFile != nil {
				mdPath = tt.setupFile(t)
			}

			pdfPath, err := ConvertMarkdownToPDF(mdPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, pdfPath)
			if tt.validateAfter != nil {
				tt.validateAfter(t, pdfPath)
			}
		})
	}
}

func TestRender(t *testing.T) {
	pdfPath := filepath.Join(t.TempDir(), "answers.pdf")
	content := []byte("# Answers\n\n1. x = 2\n\n2. x = 6\n")

	require.NoError(t, Render(content, pdfPath))

	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF", "output should be a PDF document")
}

package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []string{"console", "csv", "detailed-csv", "json", "pdf", "table"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "report_"+format+"."+FileExtension(format))
			written, err := GenerateReport(testReport(), format, path)
			require.NoError(t, err)
			assert.Equal(t, path, written)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	_, err := GenerateReport(testReport(), "html", filepath.Join(t.TempDir(), "out.html"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "unsupported report format")
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestRender(t *testing.T) {
	data, err := Render(testReport(), "csv-summary")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scenario A,30,31,31")

	_, err = Render(testReport(), "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "detailed-csv", "json", "pdf", "table"}, AvailableFormatterNames())

	tests := map[string]string{
		"console":      "console",
		" CSV ":        "csv",
		"text":         "console",
		"summary":      "console",
		"csv-detailed": "detailed-csv",
		"csv-summary":  "csv",
		"json-pretty":  "json",
		"pdf-report":   "pdf",
		"terminal":     "table",
	}
	for in, want := range tests {
		f := GetFormatterByName(in)
		require.NotNil(t, f, in)
		assert.Equal(t, want, f.Name(), in)
	}
	assert.Nil(t, GetFormatterByName("html"))
	assert.Contains(t, AvailableFormatAliases(), "terminal")
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "csv", FileExtension("detailed-csv"))
	assert.Equal(t, "csv", FileExtension("csv-summary"))
	assert.Equal(t, "txt", FileExtension("console"))
	assert.Equal(t, "txt", FileExtension("terminal"))
	assert.Equal(t, "json", FileExtension("json"))
	assert.Equal(t, "pdf", FileExtension("pdf"))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(testReport())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "RETIREMENT PROJECTION SUMMARY")
	assert.Contains(t, out, "Total: $10,000.00 (+$100.00/mo)")
	assert.Contains(t, out, "• Conservative return 2.00%")
	assert.Contains(t, out, "Scenario A: Retire=31 ValueAtRetirement=$11,411.03 Withdrawal=$456.44/yr")
	assert.Contains(t, out, "Depleting: Retire=65")
	assert.Contains(t, out, "Balance runs out at age 66")
	assert.Contains(t, out, "Recommended: Scenario A")
}

func TestConsoleFormatterDefaultAssumptions(t *testing.T) {
	report := testReport()
	report.Assumptions = nil
	report.Scenarios = report.Scenarios[:1]

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, DefaultAssumptions[0])
	assert.NotContains(t, out, "Recommended:")
}

func TestTableFormatter(t *testing.T) {
	data, err := TableFormatter{}.Format(testReport())
	require.NoError(t, err)
	out := string(data)

	for _, want := range []string{"Scenario A", "Depleting", "Year", "Contribution", "accumulation", "decumulation", "$11,424.00", "Balance runs out at age 66"} {
		assert.Contains(t, out, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(testReport())
	require.NoError(t, err)

	var decoded domain.ProjectionReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "Scenario A", decoded.Scenarios[0].Name)
	assert.Equal(t, 11424.0, decoded.Scenarios[0].Result.Summary.FinalBalance)
	assert.Equal(t, 66, decoded.Scenarios[1].Result.Summary.DepletionAge)
	assert.Len(t, decoded.Scenarios[1].Result.Rows, 3)
}

func TestPDFFormatter(t *testing.T) {
	data, err := PDFFormatter{}.Format(testReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPDFFormatterPaginatesLongProjections(t *testing.T) {
	report := testReport()
	res := report.Scenarios[0].Result
	rows := make([]domain.ProjectionRow, 0, 80)
	for y := 0; y < 80; y++ {
		rows = append(rows, domain.ProjectionRow{Year: y, Age: 20 + y, Phase: domain.PhaseAccumulation, Balance: float64(y) * 1000})
	}
	res.Rows = rows

	data, err := PDFFormatter{}.Format(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWriteFormattedTimestampedName(t *testing.T) {
	t.Chdir(t.TempDir())

	name, err := WriteFormatted(CSVSummarizer{}, testReport(), "", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "retirement_projection_"))
	assert.Equal(t, ".csv", filepath.Ext(name))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Scenario,CurrentAge"))
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "names", F: func(r *domain.ProjectionReport) ([]byte, error) {
		return []byte(r.Scenarios[0].Name), nil
	}}
	data, err := f.Format(testReport())
	require.NoError(t, err)
	assert.Equal(t, "Scenario A", string(data))
	assert.Equal(t, "names", f.Name())
}

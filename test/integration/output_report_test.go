package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SumitLubal/retirement/internal/calculation"
	"github.com/SumitLubal/retirement/internal/cli"
	"github.com/SumitLubal/retirement/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg := loadConfig(t, "../testdata/example_config.yaml")
	report, err := calculation.NewProjectionEngine().RunScenarios(context.Background(), cfg, runDate)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "report."+output.FileExtension(format))
			if format == "csv" {
				path = filepath.Join(dir, "summary.csv")
			}
			written, err := output.GenerateReport(report, format, path)
			require.NoError(t, err)

			data, err := os.ReadFile(written)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestCLIProjectMatchesLibrary(t *testing.T) {
	cfg := loadConfig(t, "../testdata/example_config.yaml")
	report, err := calculation.NewProjectionEngine().RunScenarios(context.Background(), cfg, runDate)
	require.NoError(t, err)
	want, err := output.Render(report, "csv")
	require.NoError(t, err)

	cmd := cli.NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"project", "--config", "../testdata/example_config.toml", "--format", "csv", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, string(want), buf.String())
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

package output

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestCSVSummaryGolden(t *testing.T) {
	data, err := CSVSummarizer{}.Format(testReport())
	require.NoError(t, err)
	newGoldie(t).Assert(t, "csv_summary", data)
}

func TestCSVDetailedGolden(t *testing.T) {
	data, err := CSVDetailedExporter{}.Format(testReport())
	require.NoError(t, err)
	newGoldie(t).Assert(t, "csv_detailed", data)
}

package output

import (
	"bytes"
	"encoding/csv"

	"github.com/SumitLubal/retirement/internal/domain"
)

// CSVDetailedExporter provides raw yearly projection rows per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "Phase", "BlendedReturn", "StartingTotal", "Contribution", "Payout", "Interest", "Balance", "ConservativeBalance", "GrowthBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sp := range report.Scenarios {
		for _, row := range sp.Result.Rows {
			record := []string{
				sp.Name,
				intToString(row.Year),
				intToString(row.Age),
				string(row.Phase),
				fixed2(row.BlendedReturn),
				fixed2(row.StartingTotal),
				fixed2(row.Contribution),
				fixed2(row.Payout),
				fixed2(row.Interest),
				fixed2(row.Balance),
				fixed2(row.ConservativeBalance),
				fixed2(row.GrowthBalance),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

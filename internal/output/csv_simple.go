package output

import (
	"bytes"
	"encoding/csv"

	"github.com/SumitLubal/retirement/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario, in report order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "CurrentAge", "RetirementAge", "EndAge", "ValueAtRetirement", "AnnualWithdrawal", "BalanceAtRetirement", "PeakBalance", "PeakAge", "FinalBalance", "TotalContributions", "TotalInterest", "TotalPayouts", "Depleted", "DepletionAge"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sp := range report.Scenarios {
		res := sp.Result
		depletion := ""
		if res.IsDepleted() {
			depletion = intToString(res.Summary.DepletionAge)
		}
		row := []string{
			sp.Name,
			intToString(res.Ages.CurrentAge),
			intToString(res.Ages.HorizonAge),
			intToString(res.Ages.EndAge()),
			fixed2(res.ValueAtHorizon),
			fixed2(res.AnnualWithdrawal),
			fixed2(res.Summary.BalanceAtHorizon),
			fixed2(res.Summary.PeakBalance),
			intToString(res.Summary.PeakAge),
			fixed2(res.Summary.FinalBalance),
			fixed2(res.Summary.TotalContributions),
			fixed2(res.Summary.TotalInterest),
			fixed2(res.Summary.TotalPayouts),
			boolToString(res.IsDepleted()),
			depletion,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"testing"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/stretchr/testify/assert"
)

func scenario(name string, withdrawal, final float64, depletionAge int) domain.ScenarioProjection {
	return domain.ScenarioProjection{
		Name: name,
		Result: &domain.ProjectionResult{
			AnnualWithdrawal: withdrawal,
			Summary:          domain.ProjectionSummary{FinalBalance: final, DepletionAge: depletionAge},
		},
	}
}

func TestAnalyzeScenarios(t *testing.T) {
	tests := []struct {
		name      string
		scenarios []domain.ScenarioProjection
		want      string
	}{
		{
			name:      "sustained beats depleted",
			scenarios: []domain.ScenarioProjection{scenario("Rich", 90000, 0, 80), scenario("Steady", 40000, 10000, 0)},
			want:      "Steady",
		},
		{
			name:      "higher withdrawal wins",
			scenarios: []domain.ScenarioProjection{scenario("Low", 30000, 500000, 0), scenario("High", 45000, 1000, 0)},
			want:      "High",
		},
		{
			name:      "later depletion wins",
			scenarios: []domain.ScenarioProjection{scenario("Early", 60000, 0, 78), scenario("Late", 50000, 0, 85)},
			want:      "Late",
		},
		{
			name:      "final balance breaks ties",
			scenarios: []domain.ScenarioProjection{scenario("A", 40000, 100, 0), scenario("B", 40000, 200, 0)},
			want:      "B",
		},
		{
			name:      "missing results are skipped",
			scenarios: []domain.ScenarioProjection{{Name: "Empty"}, scenario("Only", 1000, 1, 0)},
			want:      "Only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := AnalyzeScenarios(&domain.ProjectionReport{Scenarios: tt.scenarios})
			assert.Equal(t, tt.want, rec.ScenarioName)
		})
	}
}

func TestAnalyzeScenariosEmpty(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(&domain.ProjectionReport{}))
}

func TestAnalyzeScenariosFixture(t *testing.T) {
	rec := AnalyzeScenarios(testReport())
	assert.Equal(t, "Scenario A", rec.ScenarioName)
	assert.Equal(t, 456.44, rec.AnnualWithdrawal)
	assert.Zero(t, rec.DepletionAge)
}
